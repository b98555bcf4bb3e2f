package courseRoutes

import (
	courseController "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courses := app.Group("/courses")

	// Public catalog
	courses.Get("/", courseValidator.CourseList(), courseController.GetAllCourses)

	// Student routes (before the :id routes so "my-courses" is not read as an id)
	courses.Get("/my-courses",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleStudent),
		courseController.GetEnrolledCourses)

	courses.Get("/:id", courseValidator.CourseID(), courseController.GetCourseByID)

	// Teacher/admin course management
	courses.Post("/",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin),
		courseValidator.CreateCourse(),
		courseController.CreateCourse)

	courses.Put("/:id",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin),
		courseValidator.CourseID(),
		courseValidator.UpdateCourse(),
		courseController.UpdateCourse)

	courses.Delete("/:id",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin),
		courseValidator.CourseID(),
		courseController.DeleteCourse)

	// Enrollment
	courses.Post("/:id/enroll",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleStudent),
		courseValidator.CourseID(),
		courseController.EnrollInCourse)

	// Learning modules
	courses.Get("/:id/modules",
		middleware.JWTMiddleware,
		courseValidator.CourseID(),
		courseController.GetCourseModules)

	courses.Post("/:id/modules",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin),
		courseValidator.CourseID(),
		courseValidator.CreateModule(),
		courseController.CreateModule)

	courses.Put("/:id/modules/:moduleId",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin),
		courseValidator.CourseID(),
		courseValidator.ModuleID(),
		courseValidator.CreateModule(),
		courseController.UpdateModule)

	// Assessments
	courses.Get("/:id/assessments",
		middleware.JWTMiddleware,
		courseValidator.CourseID(),
		courseController.GetCourseAssessments)

	courses.Post("/:id/assessments",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin),
		courseValidator.CourseID(),
		courseValidator.CreateAssessment(),
		courseController.CreateAssessment)

	// Progress
	courses.Post("/:id/modules/:moduleId/complete",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleStudent),
		courseValidator.CourseID(),
		courseValidator.ModuleID(),
		courseValidator.CompleteModule(),
		courseController.CompleteModule)

	courses.Get("/:id/progress",
		middleware.JWTMiddleware,
		middleware.RequireRoles(models.RoleStudent),
		courseValidator.CourseID(),
		courseController.GetCourseProgress)
}
