package courseValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// CompleteModuleRequest is the payload a student submits when finishing a
// module. Both fields are optional.
type CompleteModuleRequest struct {
	Score            int `json:"score"`
	TimeSpentMinutes int `json:"time_spent_minutes"`
}

func CompleteModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CompleteModuleRequest)

		// An empty body is fine, completion alone is meaningful.
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		errors := make(map[string]string)

		if reqData.Score < 0 || reqData.Score > 100 {
			errors["score"] = "Score must be between 0 and 100!"
		}
		if reqData.TimeSpentMinutes < 0 {
			errors["time_spent_minutes"] = "Time spent must be zero or positive!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompletion", reqData)
		return c.Next()
	}
}
