package userController

import (
	"log"

	"lms/database"
	"lms/middleware"
	"lms/repository"
	userValidator "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the authenticated user's own record.
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := repository.FindActiveUserByID(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

// UpdateProfile merges the provided profile fields. Email, password and role
// are immutable here.
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := repository.FindActiveUserByID(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*userValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.FirstName != nil {
		user.FirstName = *reqData.FirstName
	}
	if reqData.LastName != nil {
		user.LastName = *reqData.LastName
	}
	if reqData.PhoneNumber != nil {
		user.PhoneNumber = *reqData.PhoneNumber
	}
	if reqData.ProfileImageURL != nil {
		user.ProfileImageURL = *reqData.ProfileImageURL
	}
	if reqData.GradeLevel != nil {
		user.GradeLevel = *reqData.GradeLevel
	}
	if reqData.Specialization != nil {
		user.Specialization = *reqData.Specialization
	}
	if reqData.Bio != nil {
		user.Bio = *reqData.Bio
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error updating profile for user %d: %v", userID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}
