package authValidator

import (
	"strings"

	"lms/middleware"
	"lms/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SignupRequest is the registration payload. ADMIN is provisioned out of
// band and cannot be self-assigned here.
type SignupRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Role           string `json:"role"`
	PhoneNumber    string `json:"phone_number"`
	GradeLevel     string `json:"grade_level"`
	Specialization string `json:"specialization"`
	Bio            string `json:"bio"`
}

func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SignupRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Email
		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if err := validate.Var(reqData.Email, "email"); err != nil {
			errors["email"] = "Email format is invalid!"
		}

		// Validate Password
		if len(reqData.Password) < 8 {
			errors["password"] = "Password must be at least 8 characters long!"
		}

		// Validate Names
		if strings.TrimSpace(reqData.FirstName) == "" {
			errors["first_name"] = "First name is required!"
		}
		if strings.TrimSpace(reqData.LastName) == "" {
			errors["last_name"] = "Last name is required!"
		}

		// Validate Role
		role := models.Role(strings.ToUpper(strings.TrimSpace(reqData.Role)))
		switch role {
		case models.RoleStudent, models.RoleTeacher, models.RoleParent:
			reqData.Role = string(role)
		case models.RoleAdmin:
			errors["role"] = "Admin accounts cannot be self-registered!"
		default:
			errors["role"] = "Role must be one of STUDENT, TEACHER, PARENT!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			errors["email"] = "A valid email is required!"
		}
		if reqData.Password == "" {
			errors["password"] = "Password is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
