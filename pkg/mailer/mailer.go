// Package mailer delivers transactional mail through Mailgun.
package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/config"
)

// Mailer sends a plain-text message to one recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, text string) error
}

// Mailgun delivers mail via the Mailgun HTTP API.
type Mailgun struct {
	mg   *mailgun.MailgunImpl
	from string
}

// NewMailgun builds a Mailgun mailer from config. The API key and sending
// domain must both be set.
func NewMailgun() (*Mailgun, error) {
	domain := config.MailgunDomain()
	key := config.MailgunAPIKey()
	if domain == "" || key == "" {
		return nil, fmt.Errorf("mailer: MAIL_GUN_API_KEY and MAIL_SENDING_DOMAIN must be configured")
	}

	from := config.MailFrom()
	if from == "" {
		from = fmt.Sprintf("FoodExpress <postmaster@%s>", domain)
	}

	return &Mailgun{
		mg:   mailgun.NewMailgun(domain, key),
		from: from,
	}, nil
}

func (m *Mailgun) Send(ctx context.Context, to, subject, text string) error {
	msg := m.mg.NewMessage(m.from, subject, text, to)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, _, err := m.mg.Send(ctx, msg); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", to, err)
	}
	return nil
}
