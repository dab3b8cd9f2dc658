// Package mail is the outbound notification channel. Delivery is best-effort:
// callers treat a failed send as non-fatal and report it through the log.
package mail

import "context"

// Mailer delivers a single message to one recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
