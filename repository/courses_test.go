package repository

import (
	"fmt"
	"testing"
	"time"

	"lms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Enrollment{},
		&models.LearningModule{},
		&models.Assessment{},
		&models.StudentProgress{},
		&models.MediaFile{},
	))
	return db
}

func seedCourse(t *testing.T, db *gorm.DB, course models.Course) models.Course {
	t.Helper()
	if course.TeacherID == 0 {
		course.TeacherID = 1
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func TestQueryActiveCourses_ExcludesInactive(t *testing.T) {
	db := testDB(t)
	seedCourse(t, db, models.Course{Title: "Visible", IsActive: true})
	seedCourse(t, db, models.Course{Title: "Hidden", IsActive: false})

	page, err := QueryActiveCourses(db, CourseFilter{}, 0, 10, "", "")
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Visible", page.Items[0].Title)
	assert.Equal(t, int64(1), page.Total)

	// Even a filter that matches the inactive course by title cannot
	// resurface it.
	page, err = QueryActiveCourses(db, CourseFilter{Search: "hidden"}, 0, 10, "", "")
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.Total)
}

func TestQueryActiveCourses_SearchIsCaseInsensitive(t *testing.T) {
	db := testDB(t)
	seedCourse(t, db, models.Course{Title: "Intro to math", IsActive: true})
	seedCourse(t, db, models.Course{
		Title:       "Sanskrit basics",
		Description: "Grammar and MATHEMATICAL meter",
		IsActive:    true,
	})
	seedCourse(t, db, models.Course{Title: "History of art", IsActive: true})

	page, err := QueryActiveCourses(db, CourseFilter{Search: "MATH"}, 0, 10, "title", "asc")
	require.NoError(t, err)

	// Matches title OR description, either side case-insensitively.
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Intro to math", page.Items[0].Title)
	assert.Equal(t, "Sanskrit basics", page.Items[1].Title)
}

func TestQueryActiveCourses_CategoryAndSearchCombineWithAND(t *testing.T) {
	db := testDB(t)
	seedCourse(t, db, models.Course{Title: "Vedic math", Category: "mathematics", IsActive: true})
	seedCourse(t, db, models.Course{Title: "Vedic chanting", Category: "music", IsActive: true})
	seedCourse(t, db, models.Course{Title: "Algebra", Category: "mathematics", IsActive: true})

	page, err := QueryActiveCourses(db,
		CourseFilter{Category: "mathematics", Search: "vedic"}, 0, 10, "", "")
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Vedic math", page.Items[0].Title)
}

func TestQueryActiveCourses_CategoryIsExactMatch(t *testing.T) {
	db := testDB(t)
	seedCourse(t, db, models.Course{Title: "A", Category: "math", IsActive: true})
	seedCourse(t, db, models.Course{Title: "B", Category: "mathematics", IsActive: true})

	page, err := QueryActiveCourses(db, CourseFilter{Category: "math"}, 0, 10, "", "")
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "A", page.Items[0].Title)
}

func TestQueryActiveCourses_Pagination(t *testing.T) {
	db := testDB(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 25; i++ {
		seedCourse(t, db, models.Course{
			Model:    gorm.Model{CreatedAt: base.Add(time.Duration(i) * time.Hour)},
			Title:    fmt.Sprintf("Course %02d", i),
			IsActive: true,
		})
	}

	// Third page (0-indexed) of 10 holds the last 5 courses.
	page, err := QueryActiveCourses(db, CourseFilter{}, 2, 10, "createdAt", "desc")
	require.NoError(t, err)

	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Size)
	require.Len(t, page.Items, 5)
	// Descending creation time: ranks 21..25 are the 5 oldest.
	assert.Equal(t, "Course 05", page.Items[0].Title)
	assert.Equal(t, "Course 01", page.Items[4].Title)
}

func TestQueryActiveCourses_TieBreakIsAscendingID(t *testing.T) {
	db := testDB(t)
	same := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedCourse(t, db, models.Course{
			Model:    gorm.Model{CreatedAt: same},
			Title:    "Same moment",
			IsActive: true,
		})
	}

	first, err := QueryActiveCourses(db, CourseFilter{}, 0, 3, "createdAt", "desc")
	require.NoError(t, err)
	second, err := QueryActiveCourses(db, CourseFilter{}, 1, 3, "createdAt", "desc")
	require.NoError(t, err)

	var ids []uint
	for _, c := range append(first.Items, second.Items...) {
		ids = append(ids, c.ID)
	}
	require.Len(t, ids, 5)
	for i := 1; i < len(ids); i++ {
		assert.Greater(t, ids[i], ids[i-1], "pages must not overlap or reorder")
	}
}

func TestQueryActiveCourses_SortWhitelist(t *testing.T) {
	db := testDB(t)
	seedCourse(t, db, models.Course{Title: "Cheap", Price: 10, IsActive: true})
	seedCourse(t, db, models.Course{Title: "Pricey", Price: 90, IsActive: true})

	page, err := QueryActiveCourses(db, CourseFilter{}, 0, 10, "price", "asc")
	require.NoError(t, err)
	assert.Equal(t, "Cheap", page.Items[0].Title)

	// Unknown sort fields fall back to created_at rather than erroring or
	// reaching the SQL layer.
	_, err = QueryActiveCourses(db, CourseFilter{}, 0, 10, "password; DROP TABLE", "desc")
	assert.NoError(t, err)
}

func TestFindActiveCourseByID(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&models.User{
		Email: "t@example.com", Password: "x", FirstName: "T", LastName: "One",
		Role: models.RoleTeacher, IsActive: true,
	}).Error)
	active := seedCourse(t, db, models.Course{Title: "Up", IsActive: true, TeacherID: 1})
	inactive := seedCourse(t, db, models.Course{Title: "Down", IsActive: false, TeacherID: 1})

	got, err := FindActiveCourseByID(db, active.ID)
	require.NoError(t, err)
	assert.Equal(t, "Up", got.Title)
	assert.Equal(t, "t@example.com", got.Teacher.Email)

	_, err = FindActiveCourseByID(db, inactive.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The unrestricted lookup still sees it, mutation endpoints need that.
	got, err = FindCourseByID(db, inactive.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}
