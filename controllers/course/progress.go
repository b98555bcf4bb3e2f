package courseController

import (
	"errors"
	"log"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	"lms/policy"
	"lms/repository"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CompleteModule marks a published module as completed by the acting student
// and rolls the result up into the enrollment's progress.
func CompleteModule(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	moduleID := c.Locals("moduleID").(uint)
	db := database.Database.Db

	// Must be enrolled
	enrollment, err := repository.FindEnrollment(db, user.ID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var module models.LearningModule
	if err := db.Where("id = ? AND course_id = ? AND is_published = ?", moduleID, courseID, true).First(&module).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
	}

	reqData, ok := c.Locals("validatedCompletion").(*courseValidator.CompleteModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	now := time.Now()

	// Completing twice keeps the first timestamp, score and time add up.
	var progress models.StudentProgress
	err = db.Where("student_id = ? AND module_id = ?", user.ID, moduleID).First(&progress).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		progress = models.StudentProgress{
			StudentID:        user.ID,
			ModuleID:         moduleID,
			CourseID:         courseID,
			CompletedAt:      &now,
			Score:            reqData.Score,
			TimeSpentMinutes: reqData.TimeSpentMinutes,
		}
		if err := db.Create(&progress).Error; err != nil {
			log.Printf("Error recording progress: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
		}
	case err != nil:
		log.Printf("Error fetching progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
	default:
		if progress.CompletedAt == nil {
			progress.CompletedAt = &now
		}
		if reqData.Score > progress.Score {
			progress.Score = reqData.Score
		}
		progress.TimeSpentMinutes += reqData.TimeSpentMinutes
		if err := db.Save(&progress).Error; err != nil {
			log.Printf("Error updating progress: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
		}
	}

	// Roll up into the enrollment
	var totalModules int64
	db.Model(&models.LearningModule{}).
		Where("course_id = ? AND is_published = ?", courseID, true).
		Count(&totalModules)

	var completedModules int64
	db.Model(&models.StudentProgress{}).
		Joins("JOIN learning_modules ON learning_modules.id = student_progresses.module_id").
		Where("student_progresses.student_id = ? AND student_progresses.course_id = ?", user.ID, courseID).
		Where("student_progresses.completed_at IS NOT NULL").
		Where("learning_modules.is_published = ?", true).
		Count(&completedModules)

	fraction, done := policy.RollupProgress(int(completedModules), int(totalModules))
	enrollment.Progress = fraction
	if done && enrollment.CompletedAt == nil {
		enrollment.CompletedAt = &now
	}
	if err := db.Save(&enrollment).Error; err != nil {
		log.Printf("Error updating enrollment progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module completed successfully!", fiber.Map{
		"progress":   progress,
		"enrollment": enrollment,
	})
}

// GetCourseProgress returns the acting student's per-module progress and the
// enrollment rollup.
func GetCourseProgress(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	db := database.Database.Db

	enrollment, err := repository.FindEnrollment(db, user.ID, courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var records []models.StudentProgress
	if err := db.Where("student_id = ? AND course_id = ?", user.ID, courseID).Find(&records).Error; err != nil {
		log.Printf("Error fetching progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"enrollment": enrollment,
		"modules":    records,
	})
}
