package courseValidator

import (
	"github.com/gofiber/fiber/v2"

	"coursetrack/validators"
)

const EnrollmentKey = "validatedEnrollment"

type EnrollRequest struct {
	CourseID uint `json:"courseId" validate:"required,min=1"`
}

func EnrollCourse() fiber.Handler {
	return validators.Body[EnrollRequest](EnrollmentKey)
}

// EnrollmentCourseID validates the :courseId route parameter.
func EnrollmentCourseID() fiber.Handler {
	return validators.ParamID("courseId", CourseIDKey)
}
