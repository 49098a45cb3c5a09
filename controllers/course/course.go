package courseController

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"coursetrack/middleware"
	"coursetrack/models"
	"coursetrack/repository"
	courseValidator "coursetrack/validators/course"
)

// Store is what the catalogue and enrollment handlers need.
type Store interface {
	ListCourses(ctx context.Context, category string) ([]models.Course, error)
	GetCourse(ctx context.Context, id uint) (models.Course, error)
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)
	DeleteCourse(ctx context.Context, id uint) error
	ListLessons(ctx context.Context, courseID uint) ([]models.Lesson, error)
	GetLesson(ctx context.Context, id uint) (models.Lesson, error)
	CreateLesson(ctx context.Context, lesson models.Lesson) (models.Lesson, error)
	EnrolledCourseIDs(ctx context.Context, userID uint) (map[uint]bool, error)

	Enroll(ctx context.Context, userID, courseID uint) (models.Enrollment, error)
	ListEnrollments(ctx context.Context, userID uint) ([]models.Enrollment, error)
	GetEnrollment(ctx context.Context, userID, courseID uint) (models.Enrollment, error)
	GetUser(ctx context.Context, id uint) (models.User, error)
}

// Notifier is told about new enrollments after they are stored.
type Notifier interface {
	EnrollmentCreated(user models.User, course models.Course)
}

type Controller struct {
	store    Store
	notifier Notifier
}

// New builds the course controller. notifier may be nil.
func New(store Store, notifier Notifier) *Controller {
	return &Controller{store: store, notifier: notifier}
}

// GetAllCourses lists published courses. Authenticated callers get each course
// flagged with isEnrolled.
func (cc *Controller) GetAllCourses(c *fiber.Ctx) error {
	category, _ := c.Locals(courseValidator.CourseFilterKey).(string)

	courses, err := cc.store.ListCourses(c.UserContext(), category)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	enrolled := map[uint]bool{}
	if userID, ok := middleware.UserID(c); ok {
		if enrolled, err = cc.store.EnrolledCourseIDs(c.UserContext(), userID); err != nil {
			return middleware.ErrorResponse(c, err)
		}
	}

	items := make([]models.CourseListItem, 0, len(courses))
	for _, course := range courses {
		items = append(items, models.CourseListItem{Course: course, IsEnrolled: enrolled[course.ID]})
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", items)
}

func (cc *Controller) GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals(courseValidator.CourseIDKey).(uint)

	course, err := cc.store.GetCourse(c.UserContext(), courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if !cc.visible(c, course) {
		return middleware.ErrorResponse(c, repository.ErrCourseNotFound)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// visible reports whether the caller may see the course. Drafts are shown to
// staff only.
func (cc *Controller) visible(c *fiber.Ctx, course models.Course) bool {
	if course.Published {
		return true
	}
	userID, ok := middleware.UserID(c)
	if !ok {
		return false
	}
	user, err := cc.store.GetUser(c.UserContext(), userID)
	return err == nil && user.IsStaff()
}

func (cc *Controller) GetCategories(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", models.Categories)
}

func (cc *Controller) GetLevels(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Levels fetched successfully!", models.Levels)
}

// CreateCourse is a staff action. The caller becomes the instructor.
func (cc *Controller) CreateCourse(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData := c.Locals(courseValidator.CourseKey).(*courseValidator.CreateCourseRequest)

	course, err := cc.store.CreateCourse(c.UserContext(), models.Course{
		Title:        reqData.Title,
		Description:  reqData.Description,
		ImageURL:     reqData.ImageURL,
		Category:     reqData.Category,
		Level:        reqData.Level,
		Published:    reqData.Published,
		InstructorID: &userID,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// DeleteCourse removes the course and everything attached to it.
func (cc *Controller) DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals(courseValidator.CourseIDKey).(uint)

	if err := cc.store.DeleteCourse(c.UserContext(), courseID); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	log.Printf("Course %d deleted", courseID)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

var _ Store = (*repository.Repository)(nil)
