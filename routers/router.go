package routers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	authController "coursetrack/controllers/auth"
	certificateController "coursetrack/controllers/certificate"
	courseController "coursetrack/controllers/course"
	progressController "coursetrack/controllers/progress"
	quizController "coursetrack/controllers/quiz"
	"coursetrack/middleware"
	"coursetrack/repository"
	"coursetrack/routers/authRoutes"
	"coursetrack/routers/certificateRoutes"
	"coursetrack/routers/courseRoutes"
	"coursetrack/routers/progressRoutes"
	"coursetrack/routers/quizRoutes"
	"coursetrack/utils"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Repo     *repository.Repository
	Auth     *middleware.Auth
	Notifier *utils.Notifications // nil disables notifications

	CorsOrigins   string
	AuthRateLimit int    // per IP per minute, 0 disables
	StaticDir     string // served at / when set
	AccessLog     bool
}

// NewApp builds the fiber application with every /api route mounted.
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(middleware.Recovery())
	app.Use(middleware.RequestID())

	corsOrigins := deps.CorsOrigins
	if corsOrigins == "" {
		corsOrigins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization," + middleware.RequestIDHeader,
	}))

	if deps.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency} ${respHeader:X-Request-ID}\n",
		}))
	}

	// keep typed nils out of the notifier interfaces
	var enrollNotifier courseController.Notifier
	var certNotifier certificateController.Notifier
	if deps.Notifier != nil {
		enrollNotifier = deps.Notifier
		certNotifier = deps.Notifier
	}

	quizzes := quizController.New(deps.Repo)

	api := app.Group("/api")
	authRoutes.SetupAuthRoutes(api, authController.New(deps.Repo, deps.Auth), deps.Auth,
		middleware.AuthRateLimiter(deps.AuthRateLimit, time.Minute))
	courseRoutes.SetupCourseRoutes(api, courseController.New(deps.Repo, enrollNotifier), quizzes, deps.Auth, deps.Repo)
	progressRoutes.SetupProgressRoutes(api, progressController.New(deps.Repo), deps.Auth)
	quizRoutes.SetupQuizRoutes(api, quizzes, deps.Auth, deps.Repo)
	certificateRoutes.SetupCertificateRoutes(api, certificateController.New(deps.Repo, certNotifier), deps.Auth)

	if deps.StaticDir != "" {
		app.Static("/", deps.StaticDir)
	}
	return app
}
