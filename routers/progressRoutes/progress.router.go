package progressRoutes

import (
	"github.com/gofiber/fiber/v2"

	progressController "coursetrack/controllers/progress"
	"coursetrack/middleware"
	courseValidator "coursetrack/validators/course"
)

func SetupProgressRoutes(api fiber.Router, ctrl *progressController.Controller, auth *middleware.Auth) {
	progressGroup := api.Group("/progress", auth.Required())

	progressGroup.Get("/", ctrl.GetUserProgress)
	progressGroup.Post("/", courseValidator.UpsertProgress(), ctrl.UpdateProgress)
	progressGroup.Get("/recent", courseValidator.RecentLimit(), ctrl.GetRecentlyViewed)
	progressGroup.Get("/course/:id", courseValidator.CourseID(), ctrl.GetCourseProgress)
	progressGroup.Get("/lesson/:id", courseValidator.LessonID(), ctrl.GetLessonProgress)
	progressGroup.Post("/lesson/:id/complete", courseValidator.LessonID(), ctrl.MarkLessonComplete)
}
