// Package notify sends best-effort emails about new submissions.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendGridHost = "https://api.sendgrid.com"

// Message is a plain text notification
type Message struct {
	Subject string
	Text    string
}

// Notifier delivers a message to the site owner
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// Noop drops every message. Used when notifications are not configured.
type Noop struct{}

func (Noop) Send(ctx context.Context, msg Message) error { return nil }

// SendGrid delivers notifications through the SendGrid v3 mail API
type SendGrid struct {
	client *sendgrid.Client
	from   *mail.Email
	to     *mail.Email
}

// NewSendGrid creates a notifier that mails to the given address
func NewSendGrid(apiKey, fromEmail, toEmail string) *SendGrid {
	return newSendGrid(apiKey, fromEmail, toEmail, sendGridHost)
}

func newSendGrid(apiKey, fromEmail, toEmail, host string) *SendGrid {
	request := sendgrid.GetRequest(apiKey, "/v3/mail/send", host)
	request.Method = "POST"
	return &SendGrid{
		client: &sendgrid.Client{Request: request},
		from:   mail.NewEmail("Portfolio API", fromEmail),
		to:     mail.NewEmail("", toEmail),
	}
}

func (s *SendGrid) Send(ctx context.Context, msg Message) error {
	message := mail.NewSingleEmail(s.from, msg.Subject, s.to, msg.Text, "")

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("send email to %s: %w", s.to.Address, err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email, status code: %d", response.StatusCode)
	}

	slog.Debug("Notification sent", slog.String("to", s.to.Address), slog.Int("status", response.StatusCode))
	return nil
}
