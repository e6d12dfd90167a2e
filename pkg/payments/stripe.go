// Package payments wraps the Stripe payment-intent API behind a small
// gateway interface so checkout logic can be tested without the network.
package payments

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Gateway creates an authorized-but-not-captured charge for an amount in
// minor currency units and returns the client secret the frontend confirms.
type Gateway interface {
	CreateIntent(amount int64, currency string) (clientSecret string, err error)
}

// Stripe is the production Gateway.
type Stripe struct {
	api *client.API
}

// NewStripe builds a Stripe gateway for the given secret key.
func NewStripe(secretKey string) (*Stripe, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("payments: STRIPE_SECRET_KEY is not configured")
	}
	return &Stripe{api: client.New(secretKey, nil)}, nil
}

// CreateIntent requests a card payment intent. Every request carries a fresh
// idempotency key so a retried HTTP call cannot double-charge.
func (s *Stripe) CreateIntent(amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.SetIdempotencyKey(uuid.NewString())

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("payments: create intent: %w", err)
	}
	return intent.ClientSecret, nil
}
