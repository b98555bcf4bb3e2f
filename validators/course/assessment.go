package courseValidator

import (
	"encoding/json"
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// AssessmentRequest is the create payload for an assessment. Questions is
// kept as raw JSON, the quiz builder owns its shape.
type AssessmentRequest struct {
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Questions        json.RawMessage `json:"questions"`
	PassingScore     int             `json:"passing_score"`
	TimeLimitMinutes int             `json:"time_limit_minutes"`
	IsPublished      *bool           `json:"is_published"`
}

func CreateAssessment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AssessmentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.PassingScore < 0 || reqData.PassingScore > 100 {
			errors["passing_score"] = "Passing score must be between 0 and 100!"
		}
		if reqData.TimeLimitMinutes < 0 {
			errors["time_limit_minutes"] = "Time limit must be zero or positive!"
		}
		if len(reqData.Questions) > 0 && !json.Valid(reqData.Questions) {
			errors["questions"] = "Questions must be valid JSON!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAssessment", reqData)
		return c.Next()
	}
}
