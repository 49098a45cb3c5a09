package courseValidator

import (
	"github.com/gofiber/fiber/v2"

	"coursetrack/apperror"
	"coursetrack/middleware"
	"coursetrack/validators"
)

const (
	ProgressKey    = "validatedProgress"
	RecentLimitKey = "recentLimit"
)

type ProgressRequest struct {
	CourseID  uint  `json:"courseId" validate:"required,min=1"`
	LessonID  uint  `json:"lessonId" validate:"required,min=1"`
	Completed *bool `json:"completed"`
	Progress  *int  `json:"progress" validate:"omitempty,min=0,max=100"`
}

func UpsertProgress() fiber.Handler {
	return validators.Body[ProgressRequest](ProgressKey)
}

// RecentLimit validates the optional ?limit= query parameter. Zero means the
// default limit.
func RecentLimit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 0
		if c.Query("limit") != "" {
			limit = c.QueryInt("limit", -1)
			if limit < 1 {
				return middleware.ValidationErrorResponse(c, []apperror.FieldError{
					{Field: "limit", Message: "limit must be a positive integer"},
				})
			}
		}
		c.Locals(RecentLimitKey, limit)
		return c.Next()
	}
}
