package quizController

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"coursetrack/middleware"
	"coursetrack/models"
	"coursetrack/repository"
	courseValidator "coursetrack/validators/course"
	quizValidator "coursetrack/validators/quiz"
)

const defaultPassingScore = 70

type Store interface {
	GetCourse(ctx context.Context, id uint) (models.Course, error)
	GetLesson(ctx context.Context, id uint) (models.Lesson, error)
	CreateQuiz(ctx context.Context, quiz models.Quiz) (models.Quiz, error)
	GetQuiz(ctx context.Context, id uint) (models.Quiz, error)
	ListCourseQuizzes(ctx context.Context, courseID uint) ([]models.Quiz, error)
	ListLessonQuizzes(ctx context.Context, lessonID uint) ([]models.Quiz, error)
	CreateQuestion(ctx context.Context, question models.QuizQuestion) (models.QuizQuestion, error)

	StartAttempt(ctx context.Context, userID, quizID uint) (models.QuizAttempt, error)
	SubmitAttempt(ctx context.Context, userID, attemptID uint, answers []repository.AnswerInput) (models.QuizAttempt, error)
	GetAttempt(ctx context.Context, userID, attemptID uint) (models.QuizAttempt, error)
	ListAttempts(ctx context.Context, userID, quizID uint) ([]models.QuizAttempt, error)
}

type Controller struct {
	store Store
}

func New(store Store) *Controller {
	return &Controller{store: store}
}

// quizView is a quiz as served to takers: correct answers never leave the
// server.
type quizView struct {
	models.Quiz
	Questions []models.QuestionView `json:"questions"`
}

func viewOf(quiz models.Quiz) quizView {
	questions := make([]models.QuestionView, 0, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questions = append(questions, q.View())
	}
	quiz.Questions = nil
	return quizView{Quiz: quiz, Questions: questions}
}

func (qc *Controller) GetCourseQuizzes(c *fiber.Ctx) error {
	courseID := c.Locals(courseValidator.CourseIDKey).(uint)

	if _, err := qc.store.GetCourse(c.UserContext(), courseID); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	quizzes, err := qc.store.ListCourseQuizzes(c.UserContext(), courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if quizzes == nil {
		quizzes = []models.Quiz{}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", quizzes)
}

func (qc *Controller) GetLessonQuizzes(c *fiber.Ctx) error {
	lessonID := c.Locals(courseValidator.LessonIDKey).(uint)

	if _, err := qc.store.GetLesson(c.UserContext(), lessonID); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	quizzes, err := qc.store.ListLessonQuizzes(c.UserContext(), lessonID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if quizzes == nil {
		quizzes = []models.Quiz{}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", quizzes)
}

// GetQuiz returns the quiz with its questions, minus the correct answers.
func (qc *Controller) GetQuiz(c *fiber.Ctx) error {
	quizID := c.Locals(quizValidator.QuizIDKey).(uint)

	quiz, err := qc.store.GetQuiz(c.UserContext(), quizID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", viewOf(quiz))
}

func (qc *Controller) CreateQuiz(c *fiber.Ctx) error {
	courseID := c.Locals(courseValidator.CourseIDKey).(uint)
	reqData := c.Locals(quizValidator.QuizKey).(*quizValidator.CreateQuizRequest)

	passingScore := defaultPassingScore
	if reqData.PassingScore != nil {
		passingScore = *reqData.PassingScore
	}

	quiz, err := qc.store.CreateQuiz(c.UserContext(), models.Quiz{
		CourseID:     courseID,
		LessonID:     reqData.LessonID,
		Title:        reqData.Title,
		Description:  reqData.Description,
		PassingScore: passingScore,
		TimeLimit:    reqData.TimeLimit,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}

func (qc *Controller) CreateQuestion(c *fiber.Ctx) error {
	quizID := c.Locals(quizValidator.QuizIDKey).(uint)
	reqData := c.Locals(quizValidator.QuestionKey).(*quizValidator.CreateQuestionRequest)

	question := models.QuizQuestion{
		QuizID:        quizID,
		Question:      reqData.Question,
		Type:          reqData.Type,
		CorrectAnswer: reqData.CorrectAnswer,
		Order:         reqData.Order,
	}
	if reqData.Points != nil {
		question.Points = *reqData.Points
	}
	if len(reqData.Options) > 0 {
		options, err := json.Marshal(reqData.Options)
		if err != nil {
			return middleware.ErrorResponse(c, err)
		}
		question.Options = datatypes.JSON(options)
	}

	created, err := qc.store.CreateQuestion(c.UserContext(), question)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", created)
}
