package certificateController

import (
	"context"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"coursetrack/middleware"
	"coursetrack/models"
	certificateValidator "coursetrack/validators/certificate"
)

type Store interface {
	IssueCertificate(ctx context.Context, userID, courseID uint) (models.Certificate, error)
	ListCertificates(ctx context.Context, userID uint) ([]models.CertificateWithCourse, error)
	VerifyCertificate(ctx context.Context, code string) (models.CertificateView, error)
	GetUser(ctx context.Context, id uint) (models.User, error)
	GetCourse(ctx context.Context, id uint) (models.Course, error)
}

// Notifier hears about certificates once they are committed.
type Notifier interface {
	CertificateIssued(user models.User, course models.Course, cert models.Certificate)
}

type Controller struct {
	store    Store
	notifier Notifier
}

func New(store Store, notifier Notifier) *Controller {
	return &Controller{store: store, notifier: notifier}
}

func (cc *Controller) IssueCertificate(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData := c.Locals(certificateValidator.IssueKey).(*certificateValidator.IssueRequest)

	cert, err := cc.store.IssueCertificate(c.UserContext(), userID, reqData.CourseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	if cc.notifier != nil {
		go cc.notifyIssued(cert)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Certificate issued successfully!", cert)
}

func (cc *Controller) notifyIssued(cert models.Certificate) {
	ctx := context.Background()
	user, err := cc.store.GetUser(ctx, cert.UserID)
	if err != nil {
		log.Printf("[MAILER] loading user %d: %v", cert.UserID, err)
		return
	}
	course, err := cc.store.GetCourse(ctx, cert.CourseID)
	if err != nil {
		log.Printf("[MAILER] loading course %d: %v", cert.CourseID, err)
		return
	}
	cc.notifier.CertificateIssued(user, course, cert)
}

func (cc *Controller) GetUserCertificates(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	certs, err := cc.store.ListCertificates(c.UserContext(), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	if certs == nil {
		certs = []models.CertificateWithCourse{}
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", certs)
}

// VerifyCertificate is public. Only the holder's public profile is returned.
func (cc *Controller) VerifyCertificate(c *fiber.Ctx) error {
	reqData := c.Locals(certificateValidator.VerifyKey).(*certificateValidator.VerifyRequest)

	view, err := cc.store.VerifyCertificate(c.UserContext(), strings.TrimSpace(reqData.Code))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate is valid!", view)
}
