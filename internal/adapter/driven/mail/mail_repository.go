package mail

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	gomail "github.com/wneessen/go-mail"

	"github.com/ppcraft/close-variant-negatives-go/internal/domain/repository"
	"github.com/ppcraft/close-variant-negatives-go/internal/shared/types"
)

// MailRepositoryImpl implements the MailRepository over SMTP.
type MailRepositoryImpl struct {
	cfg    types.SMTPConfig
	logger zerolog.Logger
}

// NewMailRepository creates a new SMTP mail repository.
func NewMailRepository(cfg types.SMTPConfig, logger zerolog.Logger) repository.MailRepository {
	return &MailRepositoryImpl{cfg: cfg, logger: logger}
}

// Send delivers one plain-text email to the recipient. Fire-and-forget
// from the caller's perspective; the error is for operator visibility only.
func (r *MailRepositoryImpl) Send(ctx context.Context, recipient, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(r.cfg.From); err != nil {
		return fmt.Errorf("invalid sender address %q: %w", r.cfg.From, err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", recipient, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	opts := []gomail.Option{
		gomail.WithPort(r.cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if r.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(r.cfg.Username),
			gomail.WithPassword(r.cfg.Password),
		)
	}

	client, err := gomail.NewClient(r.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating SMTP client for %s: %w", r.cfg.Host, err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending mail via %s: %w", r.cfg.Host, err)
	}

	r.logger.Info().Str("recipient", recipient).Str("subject", subject).Msg("report email sent")
	return nil
}
