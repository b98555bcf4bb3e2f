package courseController

import (
	"errors"
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/policy"
	"lms/repository"
	"lms/utils"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// currentUser loads the authenticated, still-active user behind the token.
func currentUser(c *fiber.Ctx) (models.User, bool) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return models.User{}, false
	}
	user, err := repository.FindActiveUserByID(database.Database.Db, userID)
	if err != nil {
		return models.User{}, false
	}
	return user, true
}

// GetAllCourses lists the active-course catalog with filtering, sorting and
// pagination. Public endpoint.
func GetAllCourses(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*courseValidator.CourseListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page, err := repository.QueryActiveCourses(
		database.Database.Db,
		repository.CourseFilter{Category: reqData.Category, Search: reqData.Search},
		reqData.Page, reqData.Limit, reqData.SortBy, reqData.SortDir,
	)
	if err != nil {
		log.Printf("Error querying courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": page.Items,
		"pagination": fiber.Map{
			"total": page.Total,
			"page":  page.Page,
			"limit": page.Size,
		},
	})
}

// GetCourseByID returns a single active course. Public endpoint.
func GetCourseByID(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	course, err := repository.FindActiveCourseByID(database.Database.Db, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	enrollmentCount, _ := repository.CountEnrollmentsByCourse(database.Database.Db, course.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":           course,
		"enrollment_count": enrollmentCount,
	})
}

// CreateCourse creates a course owned by the acting teacher (or admin).
func CreateCourse(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course := models.Course{
		Title:         reqData.Title,
		Description:   reqData.Description,
		Category:      reqData.Category,
		Price:         reqData.Price,
		DurationWeeks: reqData.DurationWeeks,
		ImageURL:      reqData.ImageURL,
		IsActive:      true,
		TeacherID:     user.ID,
	}
	if reqData.Level != "" {
		level, err := policy.ParseLevel(reqData.Level)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Invalid course level!", nil)
		}
		course.Level = level
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	log.Printf("Course created: %s by teacher: %s", course.Title, user.Email)
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// UpdateCourse merges the provided fields into the course after the
// ownership check.
func UpdateCourse(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	course, err := repository.FindCourseByID(database.Database.Db, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := policy.AuthorizeMutation(course, user.ID, user.Role); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only update your own courses!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*policy.CourseUpdate)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	merged, err := policy.ApplyUpdate(course, *reqData)
	if err != nil {
		if errors.Is(err, policy.ErrValidation) {
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	if err := repository.SaveCourse(database.Database.Db, &merged); err != nil {
		log.Printf("Error updating course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", merged)
}

// DeleteCourse soft-deletes a course. Enrollments stay untouched.
func DeleteCourse(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	course, err := repository.FindCourseByID(database.Database.Db, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := policy.AuthorizeMutation(course, user.ID, user.Role); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only delete your own courses!", nil)
	}

	deactivated := policy.Deactivate(course)
	if err := repository.SaveCourse(database.Database.Db, &deactivated); err != nil {
		log.Printf("Error deleting course %d: %v", courseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// EnrollInCourse enrolls the acting student into an active course.
func EnrollInCourse(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	db := database.Database.Db

	// Check if course exists and is active
	course, err := repository.FindActiveCourseByID(db, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not active!", nil)
	}

	alreadyEnrolled, err := repository.ExistsEnrollment(db, user.ID, course.ID)
	if err != nil {
		log.Printf("Error checking enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	enrollment, err := policy.DecideEnrollment(course, user, alreadyEnrolled)
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrAlreadyEnrolled):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
		case errors.Is(err, policy.ErrInvalidActor):
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Only active students can enroll!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
		}
	}

	// The unique index settles concurrent duplicates, the loser gets the
	// same conflict answer as above.
	if err := repository.SaveEnrollment(db, &enrollment); err != nil {
		if errors.Is(err, policy.ErrAlreadyEnrolled) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
		}
		log.Printf("Error saving enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	log.Printf("Student %s enrolled in course %s", user.Email, course.Title)
	go utils.SendEnrollmentEmail(user.Email, user.FullName(), course.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetEnrolledCourses lists the acting student's enrollments with courses.
func GetEnrolledCourses(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	enrollments, err := repository.ListEnrollmentsByStudent(database.Database.Db, user.ID)
	if err != nil {
		log.Printf("Error fetching enrollments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}
