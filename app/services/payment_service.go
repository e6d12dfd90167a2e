package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/jobs"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/models"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/metrics"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/payments"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/queue"
)

// PaymentStore is the persistence surface PaymentService needs.
type PaymentStore interface {
	Insert(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error)
	ByEmail(ctx context.Context, email string) ([]models.Payment, error)
}

// CartCleaner clears purchased cart entries after checkout.
type CartCleaner interface {
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

// PaymentService runs the checkout flow: charge authorization through the
// gateway, then order recording with cart cleanup.
type PaymentService struct {
	payments PaymentStore
	carts    CartCleaner
	gateway  payments.Gateway
	currency string
	dispatch func(queue.Job) error
}

func NewPaymentService(store PaymentStore, carts CartCleaner, gateway payments.Gateway, currency string) *PaymentService {
	return &PaymentService{
		payments: store,
		carts:    carts,
		gateway:  gateway,
		currency: currency,
		dispatch: queue.Dispatch,
	}
}

// SetDispatcher overrides how the confirmation-mail job is enqueued.
func (s *PaymentService) SetDispatcher(fn func(queue.Job) error) {
	s.dispatch = fn
}

// CreateIntent authorizes a charge for price (major units, e.g. 19.99) and
// returns the client secret for the frontend to confirm. The amount is
// rounded to whole minor units so 19.99 becomes exactly 1999 cents.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(math.Round(price * 100))
	if amount <= 0 {
		return "", ErrInvalidAmount
	}

	secret, err := s.gateway.CreateIntent(amount, s.currency)
	if err != nil {
		metrics.PaymentIntents.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}
	metrics.PaymentIntents.WithLabelValues("success").Inc()
	return secret, nil
}

// ConfirmResult reports what a confirmed order changed.
type ConfirmResult struct {
	InsertedID   primitive.ObjectID
	DeletedCount int64
}

// ConfirmOrder records a paid order and clears the purchased cart entries.
// The two writes are not transactional: a crash between them leaves the
// payment recorded and the cart intact, which the user can clear manually.
// The confirmation email is queued fire-and-forget; its failure never
// fails the order.
func (s *PaymentService) ConfirmOrder(ctx context.Context, payment *models.Payment) (ConfirmResult, error) {
	cartIDs := make([]primitive.ObjectID, 0, len(payment.CartIDs))
	for _, hex := range payment.CartIDs {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return ConfirmResult{}, ErrInvalidID
		}
		cartIDs = append(cartIDs, id)
	}

	payment.CreatedAt = time.Now().UTC()

	insertedID, err := s.payments.Insert(ctx, payment)
	if err != nil {
		return ConfirmResult{}, fmt.Errorf("confirm order: insert payment: %w", err)
	}

	deleted, err := s.carts.DeleteByIDs(ctx, cartIDs)
	if err != nil {
		return ConfirmResult{}, fmt.Errorf("confirm order: clear cart: %w", err)
	}

	metrics.OrdersConfirmed.Inc()

	if err := s.dispatch(&jobs.OrderConfirmationJob{
		Email:         payment.Email,
		TransactionID: payment.TransactionID,
		Price:         payment.Price,
	}); err != nil {
		metrics.ConfirmationMails.WithLabelValues("dispatch_error").Inc()
	}

	return ConfirmResult{InsertedID: insertedID, DeletedCount: deleted}, nil
}

// PaymentsByEmail returns one user's order history.
func (s *PaymentService) PaymentsByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	return s.payments.ByEmail(ctx, email)
}
