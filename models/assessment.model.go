package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Assessment is a quiz/exam attached to a course. Questions are stored as a
// JSON document, the shape is owned by the frontend quiz builder.
type Assessment struct {
	gorm.Model
	CourseID         uint           `json:"course_id" gorm:"index;not null"`
	Title            string         `json:"title" gorm:"not null"`
	Description      string         `json:"description" gorm:"type:text"`
	Questions        datatypes.JSON `json:"questions"`
	PassingScore     int            `json:"passing_score"`
	TimeLimitMinutes int            `json:"time_limit_minutes"`
	IsPublished      bool           `json:"is_published" gorm:"default:false"`
}
