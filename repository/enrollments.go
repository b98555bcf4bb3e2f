package repository

import (
	"errors"

	"lms/models"
	"lms/policy"

	"gorm.io/gorm"
)

// ExistsEnrollment reports whether the student already holds an enrollment
// for the course.
func ExistsEnrollment(db *gorm.DB, studentID, courseID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Enrollment{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error
	return count > 0, err
}

// SaveEnrollment inserts the enrollment. The unique (student_id, course_id)
// index decides concurrent duplicate attempts; the loser's duplicated-key
// error is translated to policy.ErrAlreadyEnrolled.
func SaveEnrollment(db *gorm.DB, enrollment *models.Enrollment) error {
	if err := db.Create(enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return policy.ErrAlreadyEnrolled
		}
		return err
	}
	return nil
}

// ListEnrollmentsByStudent returns the student's enrollments, newest first,
// with the course preloaded.
func ListEnrollmentsByStudent(db *gorm.DB, studentID uint) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	err := db.Where("student_id = ?", studentID).
		Preload("Course").
		Preload("Course.Teacher").
		Order("created_at DESC").
		Order("id ASC").
		Find(&enrollments).Error
	return enrollments, err
}

// FindEnrollment returns the student's enrollment in the course.
func FindEnrollment(db *gorm.DB, studentID, courseID uint) (models.Enrollment, error) {
	var enrollment models.Enrollment
	err := db.Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&enrollment).Error
	return enrollment, err
}

// CountEnrollmentsByCourse counts students enrolled in the course.
func CountEnrollmentsByCourse(db *gorm.DB, courseID uint) (int64, error) {
	var count int64
	err := db.Model(&models.Enrollment{}).
		Where("course_id = ?", courseID).
		Count(&count).Error
	return count, err
}
