package services

import (
	"fmt"
	"html"
	"log"
	"os"

	"github.com/resend/resend-go/v2"
)

type EmailService struct {
	client      *resend.Client
	notifyEmail string
	fromEmail   string
}

var emailService *EmailService

// InitEmailService initializes the Resend client used to notify staff of new
// submissions. Without RESEND_API_KEY and CONTACT_NOTIFY_EMAIL the service
// stays disabled and submissions are persisted without notification.
func InitEmailService() {
	apiKey := os.Getenv("RESEND_API_KEY")
	notifyEmail := os.Getenv("CONTACT_NOTIFY_EMAIL")

	if apiKey == "" || notifyEmail == "" {
		log.Println("WARNING: RESEND_API_KEY or CONTACT_NOTIFY_EMAIL not set. Submission notifications disabled.")
		return
	}

	fromEmail := os.Getenv("CONTACT_FROM_EMAIL")
	if fromEmail == "" {
		fromEmail = "website@notifications.local"
	}

	emailService = &EmailService{
		client:      resend.NewClient(apiKey),
		notifyEmail: notifyEmail,
		fromEmail:   fromEmail,
	}

	log.Println("Email service initialized successfully with Resend")
}

// GetEmailService returns the singleton email service instance, nil when
// notifications are disabled.
func GetEmailService() *EmailService {
	return emailService
}

// SendSubmissionNotification emails staff a short summary of a newly received
// submission. submissionType is "contact" or "prayer".
func (s *EmailService) SendSubmissionNotification(submissionType string, name string, email string, text string) error {
	if s.client == nil {
		return fmt.Errorf("email service not initialized")
	}

	if name == "" {
		name = "Anonymous"
	}
	if email == "" {
		email = "not provided"
	}

	var subject string
	if submissionType == SubmissionTypePrayer {
		subject = "New prayer request received"
	} else {
		subject = "New contact form submission"
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #90c590; border-bottom: 2px solid #90c590; padding-bottom: 10px;">%s</h2>
    <p><strong>From:</strong> %s (%s)</p>
    <div style="background-color: #f5f5f5; border-left: 4px solid #90c590; padding: 15px; margin: 20px 0;">
        <p style="white-space: pre-wrap; margin: 0;">%s</p>
    </div>
    <p style="color: #888; font-size: 12px;">Sign in to the admin dashboard to review and respond.</p>
</body>
</html>`, subject, html.EscapeString(name), html.EscapeString(email), html.EscapeString(text))

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{s.notifyEmail},
		Subject: subject,
		Html:    htmlBody,
	}

	_, err := s.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	return nil
}
