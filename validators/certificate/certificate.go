package certificateValidator

import (
	"github.com/gofiber/fiber/v2"

	"coursetrack/validators"
)

const (
	IssueKey  = "validatedIssue"
	VerifyKey = "validatedVerify"
)

type IssueRequest struct {
	CourseID uint `json:"courseId" validate:"required,min=1"`
}

type VerifyRequest struct {
	Code string `json:"code" validate:"required,notblank,max=64"`
}

func IssueCertificate() fiber.Handler {
	return validators.Body[IssueRequest](IssueKey)
}

func VerifyCertificate() fiber.Handler {
	return validators.Body[VerifyRequest](VerifyKey)
}
