package mediaValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// RegisterMediaRequest registers an externally hosted file (e.g. a CDN or
// object-store URL) with the media registry.
type RegisterMediaRequest struct {
	FileURL  string `json:"file_url"`
	CourseID uint   `json:"course_id"`
}

func RegisterMedia() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterMediaRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.FileURL) == "" {
			errors["file_url"] = "File URL is required!"
		} else if err := validate.Var(reqData.FileURL, "url"); err != nil {
			errors["file_url"] = "File URL must be a valid URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedMedia", reqData)
		return c.Next()
	}
}

// MediaCourseID validates the :id route parameter on media listing routes.
func MediaCourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}
