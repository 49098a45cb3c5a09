package certificateRoutes

import (
	"github.com/gofiber/fiber/v2"

	certificateController "coursetrack/controllers/certificate"
	"coursetrack/middleware"
	certificateValidator "coursetrack/validators/certificate"
)

func SetupCertificateRoutes(api fiber.Router, ctrl *certificateController.Controller, auth *middleware.Auth) {
	certGroup := api.Group("/certificates")

	certGroup.Post("/verify", certificateValidator.VerifyCertificate(), ctrl.VerifyCertificate)
	certGroup.Get("/", auth.Required(), ctrl.GetUserCertificates)
	certGroup.Post("/issue", auth.Required(), certificateValidator.IssueCertificate(), ctrl.IssueCertificate)
}
