package courseController

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/policy"
	"lms/repository"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CreateAssessment attaches an assessment to an owned course.
func CreateAssessment(c *fiber.Ctx) error {
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
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only manage assessments of your own courses!", nil)
	}

	reqData, ok := c.Locals("validatedAssessment").(*courseValidator.AssessmentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	assessment := models.Assessment{
		CourseID:         course.ID,
		Title:            reqData.Title,
		Description:      reqData.Description,
		Questions:        datatypes.JSON(reqData.Questions),
		PassingScore:     reqData.PassingScore,
		TimeLimitMinutes: reqData.TimeLimitMinutes,
	}
	if reqData.IsPublished != nil {
		assessment.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Create(&assessment).Error; err != nil {
		log.Printf("Error creating assessment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create assessment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Assessment created successfully!", assessment)
}

// GetCourseAssessments lists assessments. Students must be enrolled and only
// see published ones, owners and admins see everything.
func GetCourseAssessments(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	db := database.Database.Db

	course, err := repository.FindActiveCourseByID(db, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	query := db.Where("course_id = ?", course.ID)
	if policy.AuthorizeMutation(course, user.ID, user.Role) != nil {
		enrolled, err := repository.ExistsEnrollment(db, user.ID, course.ID)
		if err != nil || !enrolled {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
		}
		query = query.Where("is_published = ?", true)
	}

	var assessments []models.Assessment
	if err := query.Order("created_at asc").Find(&assessments).Error; err != nil {
		log.Printf("Error fetching assessments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assessments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assessments fetched successfully!", fiber.Map{
		"assessments": assessments,
	})
}
