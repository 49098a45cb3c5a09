package utils

import (
	"context"
	"log"
	"strings"
	"time"

	"coursetrack/models"
)

// Notifications fans domain events out to email and the certificate webhook.
// Either collaborator may be nil.
type Notifications struct {
	Mailer  Mailer
	Webhook *WebhookClient
	Timeout time.Duration
}

func (n *Notifications) newContext() (context.Context, context.CancelFunc) {
	timeout := n.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

// EnrollmentCreated emails the user an enrollment confirmation.
func (n *Notifications) EnrollmentCreated(user models.User, course models.Course) {
	if n.Mailer == nil || user.Email == nil {
		return
	}
	ctx, cancel := n.newContext()
	defer cancel()

	subject, body := enrollmentEmail(displayName(user), course.Title)
	if err := n.Mailer.Send(ctx, displayName(user), *user.Email, subject, body); err != nil {
		log.Printf("[MAILER] enrollment email to user %d failed: %v", user.ID, err)
	}
}

// CertificateIssued emails the certificate code and posts the webhook event.
func (n *Notifications) CertificateIssued(user models.User, course models.Course, cert models.Certificate) {
	ctx, cancel := n.newContext()
	defer cancel()

	if n.Mailer != nil && user.Email != nil {
		subject, body := certificateEmail(displayName(user), course.Title, cert.CertificateCode)
		if err := n.Mailer.Send(ctx, displayName(user), *user.Email, subject, body); err != nil {
			log.Printf("[MAILER] certificate email to user %d failed: %v", user.ID, err)
		}
	}

	if n.Webhook != nil {
		err := n.Webhook.Post(ctx, CertificateEvent{
			Event:    "certificate.issued",
			Code:     cert.CertificateCode,
			UserID:   cert.UserID,
			CourseID: cert.CourseID,
			IssuedAt: cert.IssueDate,
		})
		if err != nil {
			log.Printf("[WEBHOOK] certificate %d: %v", cert.ID, err)
		}
	}
}

func displayName(user models.User) string {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		return user.Username
	}
	return name
}
