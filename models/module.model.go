package models

import "gorm.io/gorm"

// LearningModule is an ordered content unit inside a course.
type LearningModule struct {
	gorm.Model
	CourseID        uint   `json:"course_id" gorm:"index;not null"`
	Title           string `json:"title" gorm:"not null"`
	Content         string `json:"content" gorm:"type:text"`
	OrderIndex      int    `json:"order_index" gorm:"default:0"`
	VideoURL        string `json:"video_url"`
	DurationMinutes int    `json:"duration_minutes"`
	IsPublished     bool   `json:"is_published" gorm:"default:false"`
}
