package policy

import "errors"

var (
	// ErrAlreadyEnrolled indicates the student already holds an enrollment
	// for the course. The existing enrollment is never touched.
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")

	// ErrForbidden indicates the actor may not mutate the course.
	ErrForbidden = errors.New("not allowed to modify this course")

	// ErrInvalidActor indicates an inactive or role-mismatched entity was
	// passed in. Upstream resolution should have filtered these out.
	ErrInvalidActor = errors.New("invalid actor for this operation")

	// ErrValidation indicates a rejected request payload. The whole update
	// is discarded, never partially applied.
	ErrValidation = errors.New("validation failed")
)
