package courseValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"coursetrack/apperror"
	"coursetrack/middleware"
	"coursetrack/models"
	"coursetrack/validators"
)

const (
	CourseKey       = "validatedCourse"
	CourseIDKey     = "courseID"
	CourseFilterKey = "courseCategory"
)

type CreateCourseRequest struct {
	Title       string `json:"title" validate:"required,notblank,min=3,max=200"`
	Description string `json:"description" validate:"required,notblank,min=5"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
	Category    string `json:"category" validate:"required,category"`
	Level       string `json:"level" validate:"required,level"`
	Published   bool   `json:"published"`
}

func CreateCourse() fiber.Handler {
	return validators.Body[CreateCourseRequest](CourseKey)
}

// CourseList validates the optional category filter.
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := strings.TrimSpace(c.Query("category"))
		if category != "" && !isCategory(category) {
			return middleware.ValidationErrorResponse(c, []apperror.FieldError{
				{Field: "category", Message: "category must be a known category"},
			})
		}
		c.Locals(CourseFilterKey, category)
		return c.Next()
	}
}

func isCategory(category string) bool {
	for _, known := range models.Categories {
		if category == known {
			return true
		}
	}
	return false
}

// CourseID validates the :id route parameter.
func CourseID() fiber.Handler {
	return validators.ParamID("id", CourseIDKey)
}
