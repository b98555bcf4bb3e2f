package policy

import (
	"testing"

	"lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestAuthorizeMutation(t *testing.T) {
	course := activeCourse(1, 10) // owned by teacher 10

	tests := []struct {
		name    string
		actorID uint
		role    models.Role
		wantErr error
	}{
		{"owning teacher", 10, models.RoleTeacher, nil},
		{"other teacher", 11, models.RoleTeacher, ErrForbidden},
		{"admin, any id", 99, models.RoleAdmin, nil},
		{"student", 5, models.RoleStudent, ErrForbidden},
		{"parent", 7, models.RoleParent, ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := AuthorizeMutation(course, tt.actorID, tt.role)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestAuthorizeMutation_ThenAdminDeletes(t *testing.T) {
	course := activeCourse(1, 1) // teacher T1

	// T2 as a teacher is denied, T2 acting as admin is allowed.
	assert.ErrorIs(t, AuthorizeMutation(course, 2, models.RoleTeacher), ErrForbidden)
	require.NoError(t, AuthorizeMutation(course, 2, models.RoleAdmin))

	deleted := Deactivate(course)
	assert.False(t, deleted.IsActive)
	assert.True(t, course.IsActive, "input course must not be mutated")
}

func TestApplyUpdate_MergesOnlyProvidedFields(t *testing.T) {
	course := models.Course{
		Model:         gorm.Model{ID: 1},
		Title:         "Old title",
		Description:   "Old description",
		Category:      "philosophy",
		Price:         49.99,
		DurationWeeks: 8,
		Level:         models.LevelBeginner,
		IsActive:      true,
		TeacherID:     10,
	}

	merged, err := ApplyUpdate(course, CourseUpdate{
		Title: strPtr("New title"),
		Price: floatPtr(59.99),
	})

	require.NoError(t, err)
	assert.Equal(t, "New title", merged.Title)
	assert.Equal(t, 59.99, merged.Price)
	// Everything not in the payload stays as it was.
	assert.Equal(t, "Old description", merged.Description)
	assert.Equal(t, "philosophy", merged.Category)
	assert.Equal(t, 8, merged.DurationWeeks)
	assert.Equal(t, models.LevelBeginner, merged.Level)
	assert.Equal(t, uint(10), merged.TeacherID)
}

func TestApplyUpdate_IsIdempotent(t *testing.T) {
	course := activeCourse(1, 10)
	upd := CourseUpdate{
		Title:         strPtr("Algebra II"),
		Price:         floatPtr(30),
		DurationWeeks: intPtr(12),
		Level:         strPtr("advanced"),
	}

	once, err := ApplyUpdate(course, upd)
	require.NoError(t, err)
	twice, err := ApplyUpdate(once, upd)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestApplyUpdate_LevelParsing(t *testing.T) {
	course := activeCourse(1, 10)

	for _, raw := range []string{"BEGINNER", "beginner", "Beginner", " beginner "} {
		merged, err := ApplyUpdate(course, CourseUpdate{Level: strPtr(raw)})
		require.NoError(t, err, raw)
		assert.Equal(t, models.LevelBeginner, merged.Level)
	}

	_, err := ApplyUpdate(course, CourseUpdate{Level: strPtr("expert")})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestApplyUpdate_RejectsWholeUpdateOnBadField(t *testing.T) {
	course := activeCourse(1, 10)
	course.Title = "Untouched"

	merged, err := ApplyUpdate(course, CourseUpdate{
		Title: strPtr("Should not apply"),
		Price: floatPtr(-1),
	})

	assert.ErrorIs(t, err, ErrValidation)
	// No partial application: the returned course is the input.
	assert.Equal(t, "Untouched", merged.Title)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("InTeRmEdIaTe")
	require.NoError(t, err)
	assert.Equal(t, models.LevelIntermediate, level)

	_, err = ParseLevel("")
	assert.ErrorIs(t, err, ErrValidation)
}
