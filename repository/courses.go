package repository

import (
	"strings"

	"lms/models"

	"gorm.io/gorm"
)

// CourseFilter narrows the active-course catalog. Empty fields match
// everything; both filters combine with AND.
type CourseFilter struct {
	Category string
	Search   string
}

// CoursePage is one page of catalog results. Page is 0-indexed.
type CoursePage struct {
	Items []models.Course `json:"items"`
	Page  int             `json:"page"`
	Size  int             `json:"size"`
	Total int64           `json:"total"`
}

// sortColumns whitelists the caller-facing sort fields against real columns.
var sortColumns = map[string]string{
	"createdAt":     "created_at",
	"title":         "title",
	"price":         "price",
	"durationWeeks": "duration_weeks",
	"category":      "category",
	"level":         "level",
}

// QueryActiveCourses lists active courses with filtering, sorting and
// offset pagination. Ties are always broken by ascending id so repeated
// calls over stable data paginate deterministically.
func QueryActiveCourses(db *gorm.DB, filter CourseFilter, page, size int, sortBy, sortDir string) (CoursePage, error) {
	query := db.Model(&models.Course{}).Where("is_active = ?", true)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return CoursePage{}, err
	}

	column, ok := sortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(sortDir, "asc") {
		direction = "ASC"
	}

	var courses []models.Course
	err := query.
		Order(column + " " + direction).
		Order("id ASC").
		Offset(page * size).
		Limit(size).
		Preload("Teacher").
		Find(&courses).Error
	if err != nil {
		return CoursePage{}, err
	}

	return CoursePage{Items: courses, Page: page, Size: size, Total: total}, nil
}

// FindCourseByID returns the course regardless of its active flag.
func FindCourseByID(db *gorm.DB, id uint) (models.Course, error) {
	var course models.Course
	err := db.Preload("Teacher").Where("id = ?", id).First(&course).Error
	return course, err
}

// FindActiveCourseByID returns the course only while it is active.
func FindActiveCourseByID(db *gorm.DB, id uint) (models.Course, error) {
	var course models.Course
	err := db.Preload("Teacher").Where("id = ? AND is_active = ?", id, true).First(&course).Error
	return course, err
}

func SaveCourse(db *gorm.DB, course *models.Course) error {
	return db.Save(course).Error
}
