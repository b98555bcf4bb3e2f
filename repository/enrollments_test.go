package repository

import (
	"testing"

	"lms/models"
	"lms/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveEnrollment_DuplicateTranslatesToConflict(t *testing.T) {
	db := testDB(t)
	course := seedCourse(t, db, models.Course{Title: "C", IsActive: true})

	first := models.Enrollment{StudentID: 5, CourseID: course.ID}
	require.NoError(t, SaveEnrollment(db, &first))

	// Same (student, course) pair again: the unique index rejects it and
	// the caller sees the policy conflict, not a raw driver error.
	second := models.Enrollment{StudentID: 5, CourseID: course.ID}
	err := SaveEnrollment(db, &second)
	assert.ErrorIs(t, err, policy.ErrAlreadyEnrolled)

	// A different student on the same course is fine.
	third := models.Enrollment{StudentID: 6, CourseID: course.ID}
	assert.NoError(t, SaveEnrollment(db, &third))
}

func TestExistsEnrollment(t *testing.T) {
	db := testDB(t)
	course := seedCourse(t, db, models.Course{Title: "C", IsActive: true})

	exists, err := ExistsEnrollment(db, 5, course.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, SaveEnrollment(db, &models.Enrollment{StudentID: 5, CourseID: course.ID}))

	exists, err = ExistsEnrollment(db, 5, course.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestListEnrollmentsByStudent_PreloadsCourse(t *testing.T) {
	db := testDB(t)
	a := seedCourse(t, db, models.Course{Title: "Course A", IsActive: true})
	b := seedCourse(t, db, models.Course{Title: "Course B", IsActive: true})

	require.NoError(t, SaveEnrollment(db, &models.Enrollment{StudentID: 5, CourseID: a.ID}))
	require.NoError(t, SaveEnrollment(db, &models.Enrollment{StudentID: 5, CourseID: b.ID}))
	require.NoError(t, SaveEnrollment(db, &models.Enrollment{StudentID: 6, CourseID: a.ID}))

	enrollments, err := ListEnrollmentsByStudent(db, 5)
	require.NoError(t, err)

	require.Len(t, enrollments, 2)
	titles := []string{enrollments[0].Course.Title, enrollments[1].Course.Title}
	assert.ElementsMatch(t, []string{"Course A", "Course B"}, titles)

	count, err := CountEnrollmentsByCourse(db, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestPolicyThenRepository_EnrollmentFlow(t *testing.T) {
	db := testDB(t)
	course := seedCourse(t, db, models.Course{Title: "Flow", IsActive: true})
	student := models.User{
		Email: "s@example.com", Password: "x", FirstName: "S", LastName: "One",
		Role: models.RoleStudent, IsActive: true,
	}
	require.NoError(t, db.Create(&student).Error)

	// First pass: existence check says no, policy allows, insert succeeds.
	exists, err := ExistsEnrollment(db, student.ID, course.ID)
	require.NoError(t, err)
	enrollment, err := policy.DecideEnrollment(course, student, exists)
	require.NoError(t, err)
	require.NoError(t, SaveEnrollment(db, &enrollment))

	// Second pass: the recomputed flag flips the decision to a conflict.
	exists, err = ExistsEnrollment(db, student.ID, course.ID)
	require.NoError(t, err)
	_, err = policy.DecideEnrollment(course, student, exists)
	assert.ErrorIs(t, err, policy.ErrAlreadyEnrolled)
}
