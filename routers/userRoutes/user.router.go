package userRoutes

import (
	userController "lms/controllers/userControllers"
	"lms/middleware"
	userValidator "lms/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	user := app.Group("/user", middleware.JWTMiddleware)

	user.Get("/profile", userController.GetProfile)
	user.Patch("/profile", userValidator.UpdateProfile(), userController.UpdateProfile)
}
