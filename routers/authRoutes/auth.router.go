package authRoutes

import (
	authController "lms/controllers/auth"
	authValidator "lms/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/signup", authValidator.Signup(), authController.Signup)
	auth.Post("/login", authValidator.Login(), authController.Login)
}
