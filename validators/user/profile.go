package userValidator

import (
	"lms/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// UpdateProfileRequest carries the editable profile fields. Email, password
// and role are not editable through this endpoint.
type UpdateProfileRequest struct {
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	PhoneNumber     *string `json:"phone_number"`
	ProfileImageURL *string `json:"profile_image_url"`
	GradeLevel      *string `json:"grade_level"`
	Specialization  *string `json:"specialization"`
	Bio             *string `json:"bio"`
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.FirstName != nil && *reqData.FirstName == "" {
			errors["first_name"] = "First name cannot be empty!"
		}
		if reqData.LastName != nil && *reqData.LastName == "" {
			errors["last_name"] = "Last name cannot be empty!"
		}
		if reqData.ProfileImageURL != nil && *reqData.ProfileImageURL != "" {
			if err := validate.Var(*reqData.ProfileImageURL, "url"); err != nil {
				errors["profile_image_url"] = "Profile image URL must be a valid URL!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
