package services

import (
	"context"
	"fmt"

	"github.com/RifatHossaiN47/cuet-foodexpress-backend/app/models"
	"github.com/RifatHossaiN47/cuet-foodexpress-backend/pkg/collection"
)

// Counter reports the approximate size of a collection.
type Counter interface {
	EstimatedCount(ctx context.Context) (int64, error)
}

// MenuSource exposes the menu for the category join.
type MenuSource interface {
	Counter
	All(ctx context.Context) ([]models.MenuItem, error)
}

// OrderSource exposes payments for the stats aggregations.
type OrderSource interface {
	Counter
	All(ctx context.Context) ([]models.Payment, error)
	TotalRevenue(ctx context.Context) (float64, error)
}

// StatsService computes the admin dashboard aggregates.
type StatsService struct {
	users  Counter
	menu   MenuSource
	orders OrderSource
}

func NewStatsService(users Counter, menu MenuSource, orders OrderSource) *StatsService {
	return &StatsService{users: users, menu: menu, orders: orders}
}

// HomeStats is the dashboard headline block.
type HomeStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

// Home returns the headline counters. Counts are estimates so the dashboard
// stays cheap on large collections; revenue is summed server-side.
func (s *StatsService) Home(ctx context.Context) (HomeStats, error) {
	users, err := s.users.EstimatedCount(ctx)
	if err != nil {
		return HomeStats{}, fmt.Errorf("stats: count users: %w", err)
	}
	menuItems, err := s.menu.EstimatedCount(ctx)
	if err != nil {
		return HomeStats{}, fmt.Errorf("stats: count menu: %w", err)
	}
	orders, err := s.orders.EstimatedCount(ctx)
	if err != nil {
		return HomeStats{}, fmt.Errorf("stats: count orders: %w", err)
	}
	revenue, err := s.orders.TotalRevenue(ctx)
	if err != nil {
		return HomeStats{}, fmt.Errorf("stats: revenue: %w", err)
	}

	return HomeStats{Users: users, MenuItems: menuItems, Orders: orders, Revenue: revenue}, nil
}

// CategoryStat is one row of the per-category order breakdown.
type CategoryStat struct {
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// OrderStats flattens every ordered menu item out of the payment history,
// joins it against the current menu, and groups by category. Item ids that
// no longer resolve to a menu item are dropped from the breakdown, so the
// per-category quantities can sum to less than the items sold.
func (s *StatsService) OrderStats(ctx context.Context) ([]CategoryStat, error) {
	payments, err := s.orders.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: load payments: %w", err)
	}
	menu, err := s.menu.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: load menu: %w", err)
	}

	byID := collection.KeyBy(menu, func(m models.MenuItem) string { return m.ID.Hex() })

	var ordered []models.MenuItem
	for _, p := range payments {
		for _, id := range p.MenuItemIDs {
			if item, ok := byID[id]; ok {
				ordered = append(ordered, item)
			}
		}
	}

	grouped := collection.GroupBy(ordered, func(m models.MenuItem) string { return m.Category })

	stats := make([]CategoryStat, 0, len(grouped))
	for category, items := range grouped {
		stats = append(stats, CategoryStat{
			Category: category,
			Quantity: len(items),
			Revenue:  collection.Sum(items, func(m models.MenuItem) float64 { return m.Price }),
		})
	}

	return collection.SortBy(stats, func(a, b CategoryStat) bool {
		return a.Category < b.Category
	}), nil
}
