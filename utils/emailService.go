package utils

import (
	"context"
	"fmt"
	"html"
	"log"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const appName = "CourseTrack"

// Mailer delivers a single HTML email.
type Mailer interface {
	Send(ctx context.Context, toName, toEmail, subject, htmlBody string) error
}

// SendgridMailer sends through the SendGrid v3 API.
type SendgridMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

func NewSendgridMailer(apiKey, sender string) *SendgridMailer {
	return &SendgridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   sgmail.NewEmail(appName, sender),
	}
}

func (m *SendgridMailer) Send(ctx context.Context, toName, toEmail, subject, htmlBody string) error {
	msg := sgmail.NewSingleEmail(m.from, "["+appName+"] "+subject, sgmail.NewEmail(toName, toEmail), "", htmlBody)
	res, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return errors.Wrap(err, "sendgrid send")
	}
	if res.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("sendgrid send: status %d: %s", res.StatusCode, res.Body)
	}
	return nil
}

// LogMailer only logs outgoing mail. Used when no SendGrid key is configured.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, _, toEmail, subject, _ string) error {
	log.Printf("[MAILER] to=%s subject=%q", toEmail, subject)
	return nil
}

// HTML wrapper shared by all notifications
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1F3A5F; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1F3A5F; line-height: 1.6; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #4CAF50; margin: 20px 0; text-align: center; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">Happy learning!</div>
		</div>
	</body>
	</html>
	`, appName, html.EscapeString(title), bodyContent)
}

func enrollmentEmail(userName, courseName string) (subject, body string) {
	subject = "Course Enrollment Confirmation"
	body = fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have successfully enrolled in <strong>%s</strong>.</p>
		<p>Complete every lesson to earn your certificate.</p>
	`, html.EscapeString(userName), html.EscapeString(courseName))
	return subject, getEmailTemplate("Enrollment Successful!", body)
}

func certificateEmail(userName, courseName, code string) (subject, body string) {
	subject = "Course Completion Certificate"
	body = fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations on completing <strong>%s</strong>.</p>
		<div class="info-box">
			<p>Your certificate code:</p>
			<h2>%s</h2>
		</div>
		<p>Anyone can verify your certificate with this code.</p>
	`, html.EscapeString(userName), html.EscapeString(courseName), html.EscapeString(code))
	return subject, getEmailTemplate("Certificate of Completion", body)
}
