package policy

import (
	"fmt"
	"strings"

	"lms/models"
)

// AuthorizeMutation decides whether the actor may update or delete the
// course. Admins may mutate any course, teachers only their own.
func AuthorizeMutation(course models.Course, actorID uint, actorRole models.Role) error {
	if actorRole == models.RoleAdmin {
		return nil
	}
	if course.TeacherID == actorID {
		return nil
	}
	return ErrForbidden
}

// CourseUpdate is a partial course payload. Nil fields keep the current
// value, non-nil fields overwrite it.
type CourseUpdate struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	Price         *float64 `json:"price"`
	DurationWeeks *int     `json:"duration_weeks"`
	Level         *string  `json:"level"`
	ImageURL      *string  `json:"image_url"`
}

// ApplyUpdate merges upd into course and returns the result. The merge is
// all-or-nothing: any invalid field rejects the whole update and the input
// course is returned unchanged.
func ApplyUpdate(course models.Course, upd CourseUpdate) (models.Course, error) {
	if upd.Title != nil {
		if strings.TrimSpace(*upd.Title) == "" {
			return course, fmt.Errorf("%w: title cannot be empty", ErrValidation)
		}
	}
	if upd.Price != nil && *upd.Price < 0 {
		return course, fmt.Errorf("%w: price must be zero or positive", ErrValidation)
	}
	if upd.DurationWeeks != nil && *upd.DurationWeeks < 0 {
		return course, fmt.Errorf("%w: duration_weeks must be zero or positive", ErrValidation)
	}

	var level models.CourseLevel
	if upd.Level != nil {
		parsed, err := ParseLevel(*upd.Level)
		if err != nil {
			return course, err
		}
		level = parsed
	}

	merged := course
	if upd.Title != nil {
		merged.Title = *upd.Title
	}
	if upd.Description != nil {
		merged.Description = *upd.Description
	}
	if upd.Category != nil {
		merged.Category = *upd.Category
	}
	if upd.Price != nil {
		merged.Price = *upd.Price
	}
	if upd.DurationWeeks != nil {
		merged.DurationWeeks = *upd.DurationWeeks
	}
	if upd.Level != nil {
		merged.Level = level
	}
	if upd.ImageURL != nil {
		merged.ImageURL = *upd.ImageURL
	}
	return merged, nil
}

// Deactivate soft-deletes the course. Enrollments are left alone.
func Deactivate(course models.Course) models.Course {
	course.IsActive = false
	return course
}

// ParseLevel parses a difficulty level case-insensitively.
func ParseLevel(s string) (models.CourseLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(models.LevelBeginner):
		return models.LevelBeginner, nil
	case string(models.LevelIntermediate):
		return models.LevelIntermediate, nil
	case string(models.LevelAdvanced):
		return models.LevelAdvanced, nil
	default:
		return "", fmt.Errorf("%w: unknown level %q", ErrValidation, s)
	}
}
