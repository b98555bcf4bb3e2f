package models

import "gorm.io/gorm"

// Role is the platform-wide user role. It is assigned at signup and never
// changes afterwards.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
	RoleParent  Role = "PARENT"
	RoleAdmin   Role = "ADMIN"
)

type User struct {
	gorm.Model
	Email           string `json:"email" gorm:"unique;not null"`
	Password        string `json:"-" gorm:"not null"`
	FirstName       string `json:"first_name" gorm:"not null"`
	LastName        string `json:"last_name" gorm:"not null"`
	Role            Role   `json:"role" gorm:"not null;default:'STUDENT'"`
	PhoneNumber     string `json:"phone_number"`
	ProfileImageURL string `json:"profile_image_url"`
	GradeLevel      string `json:"grade_level"`     // students only
	Specialization  string `json:"specialization"`  // teachers only
	Bio             string `json:"bio" gorm:"type:text"`
	IsActive        bool   `json:"is_active" gorm:"default:true"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
