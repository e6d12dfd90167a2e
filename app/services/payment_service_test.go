package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/jobs"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/models"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/services"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/queue"
)

type fakeGateway struct {
	amount   int64
	currency string
	secret   string
	err      error
}

func (g *fakeGateway) CreateIntent(amount int64, currency string) (string, error) {
	g.amount = amount
	g.currency = currency
	return g.secret, g.err
}

type fakePaymentStore struct {
	inserted []models.Payment
}

func (s *fakePaymentStore) Insert(_ context.Context, p *models.Payment) (primitive.ObjectID, error) {
	p.ID = primitive.NewObjectID()
	s.inserted = append(s.inserted, *p)
	return p.ID, nil
}

func (s *fakePaymentStore) ByEmail(_ context.Context, email string) ([]models.Payment, error) {
	out := []models.Payment{}
	for _, p := range s.inserted {
		if p.Email == email {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCartCleaner struct {
	deleted []primitive.ObjectID
}

func (c *fakeCartCleaner) DeleteByIDs(_ context.Context, ids []primitive.ObjectID) (int64, error) {
	c.deleted = append(c.deleted, ids...)
	return int64(len(ids)), nil
}

func newTestPaymentService(gw *fakeGateway) (*services.PaymentService, *fakePaymentStore, *fakeCartCleaner, *[]queue.Job) {
	store := &fakePaymentStore{}
	carts := &fakeCartCleaner{}
	svc := services.NewPaymentService(store, carts, gw, "usd")

	dispatched := &[]queue.Job{}
	svc.SetDispatcher(func(j queue.Job) error {
		*dispatched = append(*dispatched, j)
		return nil
	})
	return svc, store, carts, dispatched
}

func TestCreateIntentConvertsToMinorUnits(t *testing.T) {
	gw := &fakeGateway{secret: "pi_secret"}
	svc, _, _, _ := newTestPaymentService(gw)

	secret, err := svc.CreateIntent(context.Background(), 19.99)
	require.NoError(t, err)
	assert.Equal(t, "pi_secret", secret)
	assert.Equal(t, int64(1999), gw.amount)
	assert.Equal(t, "usd", gw.currency)
}

func TestCreateIntentRejectsNonPositivePrice(t *testing.T) {
	svc, _, _, _ := newTestPaymentService(&fakeGateway{})

	_, err := svc.CreateIntent(context.Background(), 0)
	assert.Error(t, err)
}

func TestCreateIntentGatewayFailure(t *testing.T) {
	gw := &fakeGateway{err: errors.New("card network down")}
	svc, _, _, _ := newTestPaymentService(gw)

	_, err := svc.CreateIntent(context.Background(), 10)
	assert.ErrorIs(t, err, services.ErrGateway)
}

func TestConfirmOrderInsertsClearsAndQueuesMail(t *testing.T) {
	svc, store, carts, dispatched := newTestPaymentService(&fakeGateway{})

	cartID1 := primitive.NewObjectID()
	cartID2 := primitive.NewObjectID()

	res, err := svc.ConfirmOrder(context.Background(), &models.Payment{
		Email:         "alice@example.com",
		Price:         42.5,
		TransactionID: "pi_123",
		MenuItemIDs:   []string{primitive.NewObjectID().Hex()},
		CartIDs:       []string{cartID1.Hex(), cartID2.Hex()},
	})
	require.NoError(t, err)

	assert.False(t, res.InsertedID.IsZero())
	assert.Equal(t, int64(2), res.DeletedCount)
	assert.ElementsMatch(t, []primitive.ObjectID{cartID1, cartID2}, carts.deleted)

	require.Len(t, store.inserted, 1)
	assert.False(t, store.inserted[0].CreatedAt.IsZero())

	require.Len(t, *dispatched, 1)
	mail, ok := (*dispatched)[0].(*jobs.OrderConfirmationJob)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", mail.Email)
	assert.Equal(t, "pi_123", mail.TransactionID)
}

func TestConfirmOrderRejectsMalformedCartID(t *testing.T) {
	svc, store, _, _ := newTestPaymentService(&fakeGateway{})

	_, err := svc.ConfirmOrder(context.Background(), &models.Payment{
		Email:   "alice@example.com",
		CartIDs: []string{"garbage"},
	})
	assert.ErrorIs(t, err, services.ErrInvalidID)
	assert.Empty(t, store.inserted)
}

func TestConfirmOrderMailFailureDoesNotFailOrder(t *testing.T) {
	svc, _, _, _ := newTestPaymentService(&fakeGateway{})
	svc.SetDispatcher(func(queue.Job) error { return errors.New("queue down") })

	res, err := svc.ConfirmOrder(context.Background(), &models.Payment{
		Email:   "alice@example.com",
		CartIDs: []string{primitive.NewObjectID().Hex()},
	})
	require.NoError(t, err)
	assert.False(t, res.InsertedID.IsZero())
}
