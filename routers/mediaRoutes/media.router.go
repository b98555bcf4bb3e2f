package mediaRoutes

import (
	mediaController "lms/controllers/media"
	"lms/middleware"
	"lms/models"
	mediaValidator "lms/validators/media"

	"github.com/gofiber/fiber/v2"
)

func SetupMediaRoutes(app *fiber.App) {
	media := app.Group("/media", middleware.JWTMiddleware)

	media.Post("/upload",
		middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin),
		mediaController.UploadMedia)

	media.Post("/register",
		middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin),
		mediaValidator.RegisterMedia(),
		mediaController.RegisterMedia)

	media.Get("/course/:id",
		mediaValidator.MediaCourseID(),
		mediaController.GetCourseMedia)
}
