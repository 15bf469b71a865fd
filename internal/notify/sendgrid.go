package notify

import (
	"context"
	"fmt"

	"atlas-backend/internal/logger"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendClient is the part of *sendgrid.Client the notifier uses
type sendClient interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// SendGrid delivers notifications through the SendGrid v3 API
type SendGrid struct {
	client    sendClient
	fromEmail string
	fromName  string
	sandbox   bool
}

// NewSendGrid creates a SendGrid notifier. Outside production the sandbox
// mode is enabled: requests are validated but nothing is delivered.
func NewSendGrid(apiKey, fromEmail, fromName string, isProduction bool) *SendGrid {
	return &SendGrid{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		sandbox:   !isProduction,
	}
}

// Notify renders and sends msg
func (s *SendGrid) Notify(ctx context.Context, msg Message) error {
	subject, body, err := Render(msg)
	if err != nil {
		return err
	}

	message := mail.NewSingleEmail(
		mail.NewEmail(s.fromName, s.fromEmail),
		subject,
		mail.NewEmail(msg.ToName, msg.ToEmail),
		"",
		body,
	)
	sandbox := s.sandbox
	message.SetMailSettings(&mail.MailSettings{
		SandboxMode: &mail.Setting{Enable: &sandbox},
	})

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid: unexpected status %d: %s", response.StatusCode, response.Body)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"event":          msg.Event,
		"reference_code": msg.ReferenceCode,
		"status_code":    response.StatusCode,
	}).Debug("Notification sent")
	return nil
}
