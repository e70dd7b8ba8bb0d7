package port

import "context"

// Mailer sends plain-text email. Implementations must be safe for concurrent use.
type Mailer interface {
	Send(ctx context.Context, to string, subject string, body string) error
}
