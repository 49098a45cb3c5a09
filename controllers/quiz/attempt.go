package quizController

import (
	"github.com/gofiber/fiber/v2"

	"coursetrack/middleware"
	"coursetrack/models"
	"coursetrack/repository"
	quizValidator "coursetrack/validators/quiz"
)

func (qc *Controller) StartAttempt(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	quizID := c.Locals(quizValidator.QuizIDKey).(uint)

	attempt, err := qc.store.StartAttempt(c.UserContext(), userID, quizID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz attempt started!", attempt)
}

// SubmitAttempt grades the answers and closes the attempt.
func (qc *Controller) SubmitAttempt(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	attemptID := c.Locals(quizValidator.AttemptIDKey).(uint)
	reqData := c.Locals(quizValidator.SubmitKey).(*quizValidator.SubmitRequest)

	answers := make([]repository.AnswerInput, 0, len(reqData.Answers))
	for _, a := range reqData.Answers {
		answers = append(answers, repository.AnswerInput{QuestionID: a.QuestionID, UserAnswer: a.UserAnswer})
	}

	attempt, err := qc.store.SubmitAttempt(c.UserContext(), userID, attemptID, answers)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully!", attempt)
}

func (qc *Controller) GetAttempt(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	attemptID := c.Locals(quizValidator.AttemptIDKey).(uint)

	attempt, err := qc.store.GetAttempt(c.UserContext(), userID, attemptID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz attempt fetched successfully!", attempt)
}

// GetQuizAttempts lists the caller's attempts at one quiz, newest first.
func (qc *Controller) GetQuizAttempts(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	quizID := c.Locals(quizValidator.QuizIDKey).(uint)

	if _, err := qc.store.GetQuiz(c.UserContext(), quizID); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	attempts, err := qc.store.ListAttempts(c.UserContext(), userID, quizID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if attempts == nil {
		attempts = []models.QuizAttempt{}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz attempts fetched successfully!", attempts)
}
