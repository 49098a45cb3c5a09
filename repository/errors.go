package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"coursetrack/apperror"
)

var (
	// auth
	ErrInvalidCredentials = apperror.New(apperror.KindUnauthenticated, "Invalid username or password!")
	ErrUsernameTaken      = apperror.Validation("Username already exists!", apperror.FieldError{Field: "username", Message: "Username already exists!"})
	ErrEmailTaken         = apperror.Validation("Email already exists!", apperror.FieldError{Field: "email", Message: "Email already exists!"})
	ErrUserNotFound       = apperror.New(apperror.KindNotFound, "User not found!")

	// catalogue
	ErrCourseNotFound       = apperror.New(apperror.KindNotFound, "Course not found!")
	ErrLessonNotFound       = apperror.New(apperror.KindNotFound, "Lesson not found!")
	ErrDuplicateLessonOrder = apperror.New(apperror.KindConflict, "A lesson with this order already exists in the course!")
	ErrLessonCourseMismatch = apperror.Validation("Lesson does not belong to this course!", apperror.FieldError{Field: "lessonId", Message: "Lesson does not belong to this course!"})

	// enrollment & progress
	ErrAlreadyEnrolled    = apperror.New(apperror.KindConflict, "User already enrolled in this course!")
	ErrEnrollmentNotFound = apperror.New(apperror.KindNotFound, "Enrollment not found!")
	ErrProgressNotFound   = apperror.New(apperror.KindNotFound, "Progress not found!")

	// quizzes
	ErrQuizNotFound            = apperror.New(apperror.KindNotFound, "Quiz not found!")
	ErrAttemptNotFound         = apperror.New(apperror.KindNotFound, "Quiz attempt not found!")
	ErrUnknownQuestion         = apperror.Validation("Answer references a question that is not part of this quiz!")
	ErrDuplicateAnswer         = apperror.Validation("Each question may only be answered once per submission!")
	ErrAttemptAlreadySubmitted = apperror.New(apperror.KindConflict, "Quiz attempt has already been submitted!")
	ErrTimeLimitExceeded       = apperror.New(apperror.KindConflict, "Quiz time limit exceeded!")

	// certificates
	ErrNotEnrolled         = apperror.New(apperror.KindConflict, "User not enrolled in this course!")
	ErrAlreadyIssued       = apperror.New(apperror.KindConflict, "Certificate already issued!")
	ErrCourseIncomplete    = apperror.New(apperror.KindConflict, "Please complete the course before requesting a certificate!")
	ErrCertificateNotFound = apperror.New(apperror.KindNotFound, "Certificate not found!")

	// ownership
	ErrForbidden = apperror.New(apperror.KindForbidden, "You do not have access to this resource!")
)

// isDuplicate reports whether err is a unique constraint violation.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// drivers without an error translator
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
