package quizValidator

import (
	"github.com/gofiber/fiber/v2"

	"coursetrack/apperror"
	"coursetrack/middleware"
	"coursetrack/models"
	"coursetrack/validators"
)

const (
	QuizKey      = "validatedQuiz"
	QuestionKey  = "validatedQuestion"
	SubmitKey    = "validatedSubmission"
	QuizIDKey    = "quizID"
	AttemptIDKey = "attemptID"
)

type CreateQuizRequest struct {
	LessonID     *uint  `json:"lessonId" validate:"omitempty,min=1"`
	Title        string `json:"title" validate:"required,notblank,max=200"`
	Description  string `json:"description"`
	PassingScore *int   `json:"passingScore" validate:"omitempty,min=0,max=100"`
	TimeLimit    *int   `json:"timeLimit" validate:"omitempty,min=1"`
}

type CreateQuestionRequest struct {
	Question      string   `json:"question" validate:"required,notblank"`
	Type          string   `json:"type" validate:"required,questiontype"`
	Options       []string `json:"options" validate:"omitempty,dive,required"`
	CorrectAnswer string   `json:"correctAnswer" validate:"required"`
	Points        *int     `json:"points" validate:"omitempty,min=1"`
	Order         int      `json:"order" validate:"min=0"`
}

type AnswerRequest struct {
	QuestionID uint   `json:"questionId" validate:"required,min=1"`
	UserAnswer string `json:"userAnswer"`
}

type SubmitRequest struct {
	Answers []AnswerRequest `json:"answers" validate:"dive"`
}

func CreateQuiz() fiber.Handler {
	return validators.Body[CreateQuizRequest](QuizKey)
}

// CreateQuestion also checks the correct answer against the question type.
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateQuestionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		errs := validators.Struct(reqData)
		if len(errs) == 0 {
			errs = questionErrors(reqData)
		}
		if len(errs) > 0 {
			return middleware.ValidationErrorResponse(c, errs)
		}
		c.Locals(QuestionKey, reqData)
		return c.Next()
	}
}

func questionErrors(q *CreateQuestionRequest) []apperror.FieldError {
	var errs []apperror.FieldError
	switch q.Type {
	case models.QuestionMultipleChoice:
		if len(q.Options) < 2 {
			errs = append(errs, apperror.FieldError{Field: "options", Message: "multiple choice questions need at least 2 options"})
			break
		}
		found := false
		for _, o := range q.Options {
			if o == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, apperror.FieldError{Field: "correctAnswer", Message: "correctAnswer must be one of the options"})
		}
	case models.QuestionTrueFalse:
		if q.CorrectAnswer != "true" && q.CorrectAnswer != "false" {
			errs = append(errs, apperror.FieldError{Field: "correctAnswer", Message: "correctAnswer must be true or false"})
		}
	}
	return errs
}

func SubmitAttempt() fiber.Handler {
	return validators.Body[SubmitRequest](SubmitKey)
}

func QuizID() fiber.Handler {
	return validators.ParamID("id", QuizIDKey)
}

func AttemptID() fiber.Handler {
	return validators.ParamID("id", AttemptIDKey)
}
