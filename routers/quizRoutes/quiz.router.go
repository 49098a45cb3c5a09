package quizRoutes

import (
	"github.com/gofiber/fiber/v2"

	quizController "coursetrack/controllers/quiz"
	"coursetrack/middleware"
	"coursetrack/models"
	quizValidator "coursetrack/validators/quiz"
)

// SetupQuizRoutes mounts quiz reads, question authoring and attempts. Course
// and lesson scoped quiz listings live with the course routes.
func SetupQuizRoutes(api fiber.Router, ctrl *quizController.Controller, auth *middleware.Auth, users middleware.UserFinder) {
	staff := middleware.RequireRole(users, models.RoleInstructor, models.RoleAdmin)

	quizGroup := api.Group("/quizzes")
	quizGroup.Get("/:id", quizValidator.QuizID(), ctrl.GetQuiz)
	quizGroup.Post("/:id/questions", auth.Required(), staff, quizValidator.QuizID(), quizValidator.CreateQuestion(), ctrl.CreateQuestion)
	quizGroup.Post("/:id/attempts", auth.Required(), quizValidator.QuizID(), ctrl.StartAttempt)
	quizGroup.Get("/:id/attempts", auth.Required(), quizValidator.QuizID(), ctrl.GetQuizAttempts)

	attemptGroup := api.Group("/quiz-attempts", auth.Required())
	attemptGroup.Get("/:id", quizValidator.AttemptID(), ctrl.GetAttempt)
	attemptGroup.Post("/:id/submit", quizValidator.AttemptID(), quizValidator.SubmitAttempt(), ctrl.SubmitAttempt)
}
