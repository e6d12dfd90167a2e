// Package jobs holds the background jobs processed by the queue workers.
package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/logger"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/mailer"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/metrics"
)

var mail mailer.Mailer

// UseMailer wires the mailer the jobs send through. Called once at boot;
// when left unset, mail jobs log and succeed so the queue never backs up
// on a missing mail provider.
func UseMailer(m mailer.Mailer) {
	mail = m
}

// OrderConfirmationJob emails a customer after their order is recorded.
type OrderConfirmationJob struct {
	Email         string  `json:"email"`
	TransactionID string  `json:"transactionId"`
	Price         float64 `json:"price"`
}

func (j *OrderConfirmationJob) Handle() error {
	if mail == nil {
		logger.Warn("order confirmation skipped, no mailer configured",
			slog.String("email", j.Email))
		return nil
	}

	subject := "Order Confirmation"
	body := fmt.Sprintf(
		"Thank you for your order!\n\nTransaction ID: %s\nTotal: %.2f\n\nWe are preparing your food.",
		j.TransactionID, j.Price,
	)

	if err := mail.Send(context.Background(), j.Email, subject, body); err != nil {
		metrics.ConfirmationMails.WithLabelValues("error").Inc()
		return fmt.Errorf("order confirmation to %s: %w", j.Email, err)
	}

	metrics.ConfirmationMails.WithLabelValues("success").Inc()
	return nil
}
