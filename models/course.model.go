package models

import "gorm.io/gorm"

// CourseLevel is the difficulty of a course.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "BEGINNER"
	LevelIntermediate CourseLevel = "INTERMEDIATE"
	LevelAdvanced     CourseLevel = "ADVANCED"
)

// Course is owned by exactly one teacher. Deleting a course only flips
// IsActive to false; enrollments are kept.
type Course struct {
	gorm.Model
	Title         string      `json:"title" gorm:"not null"`
	Description   string      `json:"description" gorm:"type:text"`
	Category      string      `json:"category" gorm:"index"`
	Price         float64     `json:"price" gorm:"default:0"`
	DurationWeeks int         `json:"duration_weeks"`
	Level         CourseLevel `json:"level"`
	ImageURL      string      `json:"image_url"`
	IsActive      bool        `json:"is_active" gorm:"default:true"`
	TeacherID     uint        `json:"teacher_id" gorm:"index;not null"`
	Teacher       User        `json:"teacher" gorm:"foreignKey:TeacherID"`
}
