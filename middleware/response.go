package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"coursetrack/apperror"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors []apperror.FieldError) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// StatusFor maps an error kind to its HTTP status. Forbidden renders as 404 so
// non-owners cannot tell whether a resource exists.
func StatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation:
		return fiber.StatusUnprocessableEntity
	case apperror.KindUnauthenticated:
		return fiber.StatusUnauthorized
	case apperror.KindForbidden, apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindConflict:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorResponse writes err in the standard envelope. Unclassified errors are
// logged and hidden behind a generic message.
func ErrorResponse(c *fiber.Ctx, err error) error {
	kind := apperror.KindOf(err)
	switch kind {
	case apperror.KindServer:
		log.Printf("[API] %s %s: %v", c.Method(), c.Path(), err)
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	case apperror.KindValidation:
		fields := apperror.FieldsOf(err)
		if len(fields) == 0 {
			return JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), nil)
		}
		return JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), fields)
	case apperror.KindForbidden:
		return JsonResponse(c, StatusFor(kind), false, "Resource not found!", nil)
	default:
		return JsonResponse(c, StatusFor(kind), false, err.Error(), nil)
	}
}

// ErrorHandler is the fiber app level handler for errors returned by handlers
// and for unmatched routes.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonResponse(c, fe.Code, false, fe.Message, nil)
	}
	return ErrorResponse(c, err)
}
