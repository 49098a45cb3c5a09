package courseController

import (
	"github.com/gofiber/fiber/v2"

	"coursetrack/middleware"
	"coursetrack/models"
	"coursetrack/repository"
	courseValidator "coursetrack/validators/course"
)

// GetCourseLessons lists a course's lessons in order.
func (cc *Controller) GetCourseLessons(c *fiber.Ctx) error {
	courseID := c.Locals(courseValidator.CourseIDKey).(uint)

	course, err := cc.store.GetCourse(c.UserContext(), courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if !cc.visible(c, course) {
		return middleware.ErrorResponse(c, repository.ErrCourseNotFound)
	}
	lessons, err := cc.store.ListLessons(c.UserContext(), courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", lessons)
}

func (cc *Controller) GetLesson(c *fiber.Ctx) error {
	lessonID := c.Locals(courseValidator.LessonIDKey).(uint)

	lesson, err := cc.store.GetLesson(c.UserContext(), lessonID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	course, err := cc.store.GetCourse(c.UserContext(), lesson.CourseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if !cc.visible(c, course) {
		return middleware.ErrorResponse(c, repository.ErrLessonNotFound)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", lesson)
}

func (cc *Controller) CreateLesson(c *fiber.Ctx) error {
	courseID := c.Locals(courseValidator.CourseIDKey).(uint)
	reqData := c.Locals(courseValidator.LessonKey).(*courseValidator.CreateLessonRequest)

	lesson, err := cc.store.CreateLesson(c.UserContext(), models.Lesson{
		CourseID:    courseID,
		Title:       reqData.Title,
		Description: reqData.Description,
		VideoURL:    reqData.VideoURL,
		Order:       reqData.Order,
		Duration:    reqData.Duration,
		Content:     reqData.Content,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}
