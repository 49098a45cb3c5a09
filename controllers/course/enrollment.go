package courseController

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"coursetrack/middleware"
	"coursetrack/models"
	courseValidator "coursetrack/validators/course"
)

func (cc *Controller) EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData := c.Locals(courseValidator.EnrollmentKey).(*courseValidator.EnrollRequest)

	enrollment, err := cc.store.Enroll(c.UserContext(), userID, reqData.CourseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	if cc.notifier != nil {
		go cc.notifyEnrollment(userID, reqData.CourseID)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", enrollment)
}

func (cc *Controller) notifyEnrollment(userID, courseID uint) {
	ctx := context.Background()
	user, err := cc.store.GetUser(ctx, userID)
	if err != nil {
		log.Printf("[MAILER] loading user %d: %v", userID, err)
		return
	}
	course, err := cc.store.GetCourse(ctx, courseID)
	if err != nil {
		log.Printf("[MAILER] loading course %d: %v", courseID, err)
		return
	}
	cc.notifier.EnrollmentCreated(user, course)
}

// GetUserEnrollmentsList returns the caller's enrollments with course details.
func (cc *Controller) GetUserEnrollmentsList(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments, err := cc.store.ListEnrollments(c.UserContext(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if enrollments == nil {
		enrollments = []models.Enrollment{}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

func (cc *Controller) GetEnrollment(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	courseID := c.Locals(courseValidator.CourseIDKey).(uint)

	enrollment, err := cc.store.GetEnrollment(c.UserContext(), userID, courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment fetched successfully!", enrollment)
}
