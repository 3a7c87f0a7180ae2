package repository

import "context"

// MailRepository defines the interface for the outbound mail transport.
type MailRepository interface {
	Send(ctx context.Context, recipient, subject, body string) error
}
