package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "coursetrack/controllers/auth"
	"coursetrack/middleware"
	authValidator "coursetrack/validators/auth"
)

// SetupAuthRoutes mounts signup, login and profile routes. limiter guards the
// credential endpoints.
func SetupAuthRoutes(api fiber.Router, ctrl *authController.Controller, auth *middleware.Auth, limiter fiber.Handler) {
	authGroup := api.Group("/auth")

	authGroup.Post("/signup", limiter, authValidator.Signup(), ctrl.Signup)
	authGroup.Post("/login", limiter, authValidator.Login(), ctrl.Login)
	authGroup.Get("/me", auth.Required(), ctrl.Me)
	authGroup.Put("/me", auth.Required(), authValidator.UpdateProfile(), ctrl.UpdateMe)
}
