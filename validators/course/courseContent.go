package courseValidator

import (
	"github.com/gofiber/fiber/v2"

	"coursetrack/validators"
)

const (
	LessonKey   = "validatedLesson"
	LessonIDKey = "lessonID"
)

type CreateLessonRequest struct {
	Title       string `json:"title" validate:"required,notblank,max=200"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl" validate:"required,url"`
	Order       int    `json:"order" validate:"required,min=1"`
	Duration    *int   `json:"duration" validate:"omitempty,min=0"`
	Content     string `json:"content"`
}

func CreateLesson() fiber.Handler {
	return validators.Body[CreateLessonRequest](LessonKey)
}

// LessonID validates the :id route parameter of lesson routes.
func LessonID() fiber.Handler {
	return validators.ParamID("id", LessonIDKey)
}
