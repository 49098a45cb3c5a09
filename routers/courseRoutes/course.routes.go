package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	courseController "coursetrack/controllers/course"
	quizController "coursetrack/controllers/quiz"
	"coursetrack/middleware"
	"coursetrack/models"
	courseValidator "coursetrack/validators/course"
	quizValidator "coursetrack/validators/quiz"
)

// SetupCourseRoutes mounts the catalogue, authoring and enrollment routes.
func SetupCourseRoutes(api fiber.Router, ctrl *courseController.Controller, quizzes *quizController.Controller, auth *middleware.Auth, users middleware.UserFinder) {
	staff := middleware.RequireRole(users, models.RoleInstructor, models.RoleAdmin)
	admin := middleware.RequireRole(users, models.RoleAdmin)

	api.Get("/categories", ctrl.GetCategories)
	api.Get("/levels", ctrl.GetLevels)

	// Catalogue
	courseGroup := api.Group("/courses")
	courseGroup.Get("/", auth.Optional(), courseValidator.CourseList(), ctrl.GetAllCourses)
	courseGroup.Get("/:id", auth.Optional(), courseValidator.CourseID(), ctrl.GetCourseDetails)
	courseGroup.Get("/:id/lessons", auth.Optional(), courseValidator.CourseID(), ctrl.GetCourseLessons)
	courseGroup.Get("/:id/quizzes", courseValidator.CourseID(), quizzes.GetCourseQuizzes)

	// Authoring
	courseGroup.Post("/", auth.Required(), staff, courseValidator.CreateCourse(), ctrl.CreateCourse)
	courseGroup.Delete("/:id", auth.Required(), admin, courseValidator.CourseID(), ctrl.DeleteCourse)
	courseGroup.Post("/:id/lessons", auth.Required(), staff, courseValidator.CourseID(), courseValidator.CreateLesson(), ctrl.CreateLesson)
	courseGroup.Post("/:id/quizzes", auth.Required(), staff, courseValidator.CourseID(), quizValidator.CreateQuiz(), quizzes.CreateQuiz)

	lessonGroup := api.Group("/lessons")
	lessonGroup.Get("/:id", auth.Optional(), courseValidator.LessonID(), ctrl.GetLesson)
	lessonGroup.Get("/:id/quizzes", courseValidator.LessonID(), quizzes.GetLessonQuizzes)

	// Enrollment
	enrollmentGroup := api.Group("/enrollments", auth.Required())
	enrollmentGroup.Post("/", courseValidator.EnrollCourse(), ctrl.EnrollInCourse)
	enrollmentGroup.Get("/", ctrl.GetUserEnrollmentsList)
	enrollmentGroup.Get("/:courseId", courseValidator.EnrollmentCourseID(), ctrl.GetEnrollment)
}
