package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment links a student to a course. The composite unique index makes
// the database the arbiter for concurrent duplicate enrollment attempts:
// the loser gets a duplicated-key error.
type Enrollment struct {
	gorm.Model
	StudentID   uint       `json:"student_id" gorm:"uniqueIndex:idx_student_course;not null"`
	CourseID    uint       `json:"course_id" gorm:"uniqueIndex:idx_student_course;not null"`
	Progress    float64    `json:"progress" gorm:"default:0"` // 0.0 .. 1.0
	CompletedAt *time.Time `json:"completed_at"`
	Student     User       `json:"-" gorm:"foreignKey:StudentID"`
	Course      Course     `json:"course" gorm:"foreignKey:CourseID"`
}

func (e *Enrollment) IsCompleted() bool {
	return e.CompletedAt != nil
}
