package models

import (
	"time"

	"gorm.io/gorm"
)

// StudentProgress records a student's completion of a single learning module.
// One row per (student, module).
type StudentProgress struct {
	gorm.Model
	StudentID        uint       `json:"student_id" gorm:"uniqueIndex:idx_student_module;not null"`
	ModuleID         uint       `json:"module_id" gorm:"uniqueIndex:idx_student_module;not null"`
	CourseID         uint       `json:"course_id" gorm:"index;not null"`
	CompletedAt      *time.Time `json:"completed_at"`
	Score            int        `json:"score"`
	TimeSpentMinutes int        `json:"time_spent_minutes"`
}

func (p *StudentProgress) IsCompleted() bool {
	return p.CompletedAt != nil
}
