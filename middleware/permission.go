package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"coursetrack/models"
)

// UserFinder loads the caller for role checks.
type UserFinder interface {
	GetUser(ctx context.Context, id uint) (models.User, error)
}

// RequireRole returns a middleware that checks if the caller has one of the
// given roles. It must run after Auth.Required.
func RequireRole(users UserFinder, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := UserID(c)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		user, err := users.GetUser(c.UserContext(), userID)
		if err != nil {
			return ErrorResponse(c, err)
		}
		for _, role := range roles {
			if user.Role == role {
				c.Locals("user", user)
				return c.Next()
			}
		}
		return JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", nil)
	}
}
