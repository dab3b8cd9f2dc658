package mail

import (
	"context"

	"shopapi.dev/internal/obs"
)

var _ Mailer = (*LogMailer)(nil)

// LogMailer writes messages to the service log instead of delivering them.
// Used when no SMTP relay is configured, so development runs still surface
// outbound codes.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	obs.LogEvent(map[string]any{
		"type":    "mail",
		"to":      to,
		"subject": subject,
		"body":    body,
	})
	return nil
}
