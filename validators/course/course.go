package courseValidator

import (
	"strconv"
	"strings"

	"lms/middleware"
	"lms/policy"

	"github.com/gofiber/fiber/v2"
)

// maxPageSize caps the requested page size. The underlying query layer is
// uncapped, the limit is transport policy.
const maxPageSize = 100

// CreateCourseRequest is the creation payload for a course.
type CreateCourseRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	DurationWeeks int     `json:"duration_weeks"`
	Level         string  `json:"level"`
	ImageURL      string  `json:"image_url"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Category
		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}

		// Validate Price
		if reqData.Price < 0 {
			errors["price"] = "Price must be zero or positive!"
		}

		if reqData.DurationWeeks < 0 {
			errors["duration_weeks"] = "Duration must be zero or positive!"
		}

		// Validate Level (optional)
		if strings.TrimSpace(reqData.Level) != "" {
			if _, err := policy.ParseLevel(reqData.Level); err != nil {
				errors["level"] = "Level must be one of BEGINNER, INTERMEDIATE, ADVANCED!"
			}
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(policy.CourseUpdate)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// Field-level rules live in policy.ApplyUpdate; here we only make
		// sure the payload parses.
		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// CourseListRequest carries catalog query parameters. Page is 0-indexed.
type CourseListRequest struct {
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
	SortBy   string `query:"sortBy"`
	SortDir  string `query:"sortDir"`
	Category string `query:"category"`
	Search   string `query:"search"`
}

func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &CourseListRequest{
			Page:    0,
			Limit:   10,
			SortBy:  "createdAt",
			SortDir: "desc",
		}

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page < 0 {
			errors["page"] = "Page must be zero or positive!"
		}
		if reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		} else if reqData.Limit > maxPageSize {
			errors["limit"] = "Limit must not exceed 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// CourseID validates the :id route parameter.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		// Validate CourseID is a valid integer
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}
