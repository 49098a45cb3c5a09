package progressController

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"coursetrack/middleware"
	"coursetrack/models"
	"coursetrack/repository"
	courseValidator "coursetrack/validators/course"
)

type Store interface {
	UpsertProgress(ctx context.Context, upd repository.ProgressUpdate) (models.UserProgress, error)
	MarkComplete(ctx context.Context, userID, lessonID uint) (models.UserProgress, error)
	UserProgress(ctx context.Context, userID uint) ([]models.UserProgress, error)
	CourseProgress(ctx context.Context, userID, courseID uint) ([]models.UserProgress, error)
	CourseCompletion(ctx context.Context, userID, courseID uint) (repository.Completion, error)
	LessonProgress(ctx context.Context, userID, lessonID uint) (models.UserProgress, error)
	RecentlyViewed(ctx context.Context, userID uint, limit int) ([]models.RecentLesson, error)
}

type Controller struct {
	store Store
}

func New(store Store) *Controller {
	return &Controller{store: store}
}

type courseProgressResponse struct {
	Progress   []models.UserProgress `json:"progress"`
	Completion repository.Completion `json:"completion"`
}

// GetUserProgress returns every progress record of the caller.
func (pc *Controller) GetUserProgress(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	records, err := pc.store.UserProgress(c.UserContext(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", nonNil(records))
}

func (pc *Controller) UpdateProgress(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData := c.Locals(courseValidator.ProgressKey).(*courseValidator.ProgressRequest)

	record, err := pc.store.UpsertProgress(c.UserContext(), repository.ProgressUpdate{
		UserID:    userID,
		CourseID:  reqData.CourseID,
		LessonID:  reqData.LessonID,
		Completed: reqData.Completed,
		Progress:  reqData.Progress,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", record)
}

func (pc *Controller) MarkLessonComplete(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	lessonID := c.Locals(courseValidator.LessonIDKey).(uint)

	record, err := pc.store.MarkComplete(c.UserContext(), userID, lessonID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson marked as complete!", record)
}

// GetCourseProgress returns the caller's records for one course with the
// derived completion summary.
func (pc *Controller) GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals(courseValidator.CourseIDKey).(uint)

	completion, err := pc.store.CourseCompletion(c.UserContext(), userID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	records, err := pc.store.CourseProgress(c.UserContext(), userID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course progress fetched successfully!", courseProgressResponse{
		Progress:   nonNil(records),
		Completion: completion,
	})
}

func (pc *Controller) GetLessonProgress(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	lessonID := c.Locals(courseValidator.LessonIDKey).(uint)

	record, err := pc.store.LessonProgress(c.UserContext(), userID, lessonID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson progress fetched successfully!", record)
}

func (pc *Controller) GetRecentlyViewed(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	limit, _ := c.Locals(courseValidator.RecentLimitKey).(int)

	lessons, err := pc.store.RecentlyViewed(c.UserContext(), userID, limit)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if lessons == nil {
		lessons = []models.RecentLesson{}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recently viewed lessons fetched successfully!", lessons)
}

func nonNil(records []models.UserProgress) []models.UserProgress {
	if records == nil {
		return []models.UserProgress{}
	}
	return records
}
