// Package policy holds the pure decision functions for enrollment and course
// mutation. Nothing here touches the database; callers resolve entities,
// invoke a decision, then persist the returned record themselves. That keeps
// the rules independently testable and safe to call from any number of
// request handlers concurrently.
package policy

import (
	"fmt"

	"lms/models"
)

// DecideEnrollment decides whether student may enroll in course.
//
// The caller resolves both entities and precomputes alreadyEnrolled with an
// existence check. On success the returned Enrollment starts at zero progress
// with no completion timestamp; the caller is responsible for saving it.
func DecideEnrollment(course models.Course, student models.User, alreadyEnrolled bool) (models.Enrollment, error) {
	if !course.IsActive {
		return models.Enrollment{}, fmt.Errorf("%w: course is not active", ErrInvalidActor)
	}
	if !student.IsActive {
		return models.Enrollment{}, fmt.Errorf("%w: student account is not active", ErrInvalidActor)
	}
	// Role is checked upstream by the transport layer, but never trusted.
	if student.Role != models.RoleStudent {
		return models.Enrollment{}, fmt.Errorf("%w: only students can enroll", ErrInvalidActor)
	}
	if alreadyEnrolled {
		return models.Enrollment{}, ErrAlreadyEnrolled
	}

	return models.Enrollment{
		StudentID:   student.ID,
		CourseID:    course.ID,
		Progress:    0.0,
		CompletedAt: nil,
	}, nil
}
