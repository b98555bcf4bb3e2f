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
)

// CreateModule adds a learning module to a course the actor owns.
func CreateModule(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	course, err := repository.FindCourseByID(database.Database.Db, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Module management follows the same ownership rule as course mutation.
	if err := policy.AuthorizeMutation(course, user.ID, user.Role); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only manage modules of your own courses!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*courseValidator.ModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module := models.LearningModule{
		CourseID:        course.ID,
		Title:           reqData.Title,
		Content:         reqData.Content,
		OrderIndex:      reqData.OrderIndex,
		VideoURL:        reqData.VideoURL,
		DurationMinutes: reqData.DurationMinutes,
	}
	if reqData.IsPublished != nil {
		module.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Create(&module).Error; err != nil {
		log.Printf("Error creating module: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// UpdateModule edits an existing module of an owned course.
func UpdateModule(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(uint)

	course, err := repository.FindCourseByID(database.Database.Db, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := policy.AuthorizeMutation(course, user.ID, user.Role); err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only manage modules of your own courses!", nil)
	}

	var module models.LearningModule
	if err := database.Database.Db.Where("id = ? AND course_id = ?", moduleID, courseID).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*courseValidator.ModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module.Title = reqData.Title
	module.Content = reqData.Content
	module.OrderIndex = reqData.OrderIndex
	module.VideoURL = reqData.VideoURL
	module.DurationMinutes = reqData.DurationMinutes
	if reqData.IsPublished != nil {
		module.IsPublished = *reqData.IsPublished
	}

	if err := database.Database.Db.Save(&module).Error; err != nil {
		log.Printf("Error updating module %d: %v", moduleID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// GetCourseModules lists a course's modules ordered by position. Owners and
// admins see drafts, everyone else only published modules.
func GetCourseModules(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	course, err := repository.FindActiveCourseByID(database.Database.Db, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	query := database.Database.Db.Where("course_id = ?", course.ID)
	if policy.AuthorizeMutation(course, user.ID, user.Role) != nil {
		query = query.Where("is_published = ?", true)
	}

	var modules []models.LearningModule
	if err := query.Order("order_index asc").Find(&modules).Error; err != nil {
		log.Printf("Error fetching modules: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"course":  course,
		"modules": modules,
	})
}
