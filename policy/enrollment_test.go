package policy

import (
	"testing"

	"lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func activeCourse(id, teacherID uint) models.Course {
	return models.Course{
		Model:     gorm.Model{ID: id},
		Title:     "Intro to math",
		Category:  "mathematics",
		IsActive:  true,
		TeacherID: teacherID,
	}
}

func activeStudent(id uint) models.User {
	return models.User{
		Model:    gorm.Model{ID: id},
		Role:     models.RoleStudent,
		IsActive: true,
	}
}

func TestDecideEnrollment_NewEnrollment(t *testing.T) {
	course := activeCourse(1, 10)
	student := activeStudent(5)

	enrollment, err := DecideEnrollment(course, student, false)

	require.NoError(t, err)
	assert.Equal(t, uint(5), enrollment.StudentID)
	assert.Equal(t, uint(1), enrollment.CourseID)
	assert.Equal(t, 0.0, enrollment.Progress)
	assert.Nil(t, enrollment.CompletedAt)
}

func TestDecideEnrollment_SecondAttemptConflicts(t *testing.T) {
	course := activeCourse(1, 10)
	student := activeStudent(5)

	_, err := DecideEnrollment(course, student, false)
	require.NoError(t, err)

	// The caller persisted the first enrollment, so the existence check
	// now reports true.
	_, err = DecideEnrollment(course, student, true)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
}

func TestDecideEnrollment_RejectsInvalidActors(t *testing.T) {
	tests := []struct {
		name    string
		course  models.Course
		student models.User
	}{
		{
			name:    "inactive course",
			course:  models.Course{Model: gorm.Model{ID: 1}, IsActive: false},
			student: activeStudent(5),
		},
		{
			name:   "inactive student",
			course: activeCourse(1, 10),
			student: models.User{
				Model: gorm.Model{ID: 5}, Role: models.RoleStudent, IsActive: false,
			},
		},
		{
			name:   "teacher cannot enroll",
			course: activeCourse(1, 10),
			student: models.User{
				Model: gorm.Model{ID: 10}, Role: models.RoleTeacher, IsActive: true,
			},
		},
		{
			name:   "parent cannot enroll",
			course: activeCourse(1, 10),
			student: models.User{
				Model: gorm.Model{ID: 7}, Role: models.RoleParent, IsActive: true,
			},
		},
		{
			name:   "admin cannot enroll",
			course: activeCourse(1, 10),
			student: models.User{
				Model: gorm.Model{ID: 2}, Role: models.RoleAdmin, IsActive: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecideEnrollment(tt.course, tt.student, false)
			assert.ErrorIs(t, err, ErrInvalidActor)
		})
	}
}

func TestDecideEnrollment_ConflictBeatsRoleCheckOrderIndependence(t *testing.T) {
	// An already-enrolled flag on an inactive course still reports the
	// actor problem first, the caller should have never reached this point.
	course := models.Course{Model: gorm.Model{ID: 1}, IsActive: false}
	_, err := DecideEnrollment(course, activeStudent(5), true)
	assert.ErrorIs(t, err, ErrInvalidActor)
}
