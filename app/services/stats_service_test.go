package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/models"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/services"
)

type fakeCounter int64

func (c fakeCounter) EstimatedCount(context.Context) (int64, error) { return int64(c), nil }

type fakeMenuSource struct {
	fakeCounter
	items []models.MenuItem
}

func (s *fakeMenuSource) All(context.Context) ([]models.MenuItem, error) { return s.items, nil }

type fakeOrderSource struct {
	fakeCounter
	payments []models.Payment
	revenue  float64
}

func (s *fakeOrderSource) All(context.Context) ([]models.Payment, error) { return s.payments, nil }
func (s *fakeOrderSource) TotalRevenue(context.Context) (float64, error) { return s.revenue, nil }

func TestHomeStats(t *testing.T) {
	svc := services.NewStatsService(
		fakeCounter(12),
		&fakeMenuSource{fakeCounter: 30},
		&fakeOrderSource{fakeCounter: 7, revenue: 321.5},
	)

	stats, err := svc.Home(context.Background())
	require.NoError(t, err)
	assert.Equal(t, services.HomeStats{Users: 12, MenuItems: 30, Orders: 7, Revenue: 321.5}, stats)
}

func TestOrderStatsGroupsByCategory(t *testing.T) {
	pizza := models.MenuItem{ID: primitive.NewObjectID(), Name: "Margherita", Category: "pizza", Price: 12}
	pasta := models.MenuItem{ID: primitive.NewObjectID(), Name: "Carbonara", Category: "pasta", Price: 15}
	salad := models.MenuItem{ID: primitive.NewObjectID(), Name: "Caesar", Category: "salad", Price: 9}

	svc := services.NewStatsService(
		fakeCounter(0),
		&fakeMenuSource{items: []models.MenuItem{pizza, pasta, salad}},
		&fakeOrderSource{payments: []models.Payment{
			{MenuItemIDs: []string{pizza.ID.Hex(), pasta.ID.Hex()}},
			{MenuItemIDs: []string{pizza.ID.Hex()}},
		}},
	)

	stats, err := svc.OrderStats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats, 2)
	assert.Equal(t, services.CategoryStat{Category: "pasta", Quantity: 1, Revenue: 15}, stats[0])
	assert.Equal(t, services.CategoryStat{Category: "pizza", Quantity: 2, Revenue: 24}, stats[1])
}

func TestOrderStatsDropsUnresolvedMenuIDs(t *testing.T) {
	pizza := models.MenuItem{ID: primitive.NewObjectID(), Category: "pizza", Price: 12}

	svc := services.NewStatsService(
		fakeCounter(0),
		&fakeMenuSource{items: []models.MenuItem{pizza}},
		&fakeOrderSource{payments: []models.Payment{
			{MenuItemIDs: []string{pizza.ID.Hex(), primitive.NewObjectID().Hex(), "deleted-item"}},
		}},
	)

	stats, err := svc.OrderStats(context.Background())
	require.NoError(t, err)

	require.Len(t, stats, 1)
	assert.Equal(t, 1, stats[0].Quantity)
	assert.Equal(t, float64(12), stats[0].Revenue)
}

func TestOrderStatsEmptyHistory(t *testing.T) {
	svc := services.NewStatsService(
		fakeCounter(0),
		&fakeMenuSource{},
		&fakeOrderSource{},
	)

	stats, err := svc.OrderStats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)
}
