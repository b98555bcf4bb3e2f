package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ModuleRequest is the create/update payload for a learning module.
type ModuleRequest struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	OrderIndex      int    `json:"order_index"`
	VideoURL        string `json:"video_url"`
	DurationMinutes int    `json:"duration_minutes"`
	IsPublished     *bool  `json:"is_published"`
}

func CreateModule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ModuleRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.OrderIndex < 0 {
			errors["order_index"] = "Order index must be zero or positive!"
		}
		if reqData.DurationMinutes < 0 {
			errors["duration_minutes"] = "Duration must be zero or positive!"
		}
		if reqData.VideoURL != "" {
			if err := validate.Var(reqData.VideoURL, "url"); err != nil {
				errors["video_url"] = "Video URL must be a valid URL!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedModule", reqData)
		return c.Next()
	}
}

// ModuleID validates the :moduleId route parameter.
func ModuleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleIDStr := strings.TrimSpace(c.Params("moduleId"))
		moduleID, err := strconv.Atoi(moduleIDStr)
		if err != nil || moduleID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Module ID!", nil)
		}

		c.Locals("moduleID", uint(moduleID))
		return c.Next()
	}
}
