package query

import (
	"context"
	"math"
	"testing"

	itemdomain "github.com/tair/inventory-tracker/internal/item/domain"
)

// Mock ItemRepository; only FindAllByOwner matters here
type mockItemRepo struct {
	items map[uint][]itemdomain.Item
}

func (m *mockItemRepo) Create(ctx context.Context, item *itemdomain.Item) error { return nil }

func (m *mockItemRepo) FindBySKU(ctx context.Context, sku string) (*itemdomain.Item, error) {
	return nil, itemdomain.ErrItemNotFound
}

func (m *mockItemRepo) FindByOwner(ctx context.Context, id, userID uint) (*itemdomain.Item, error) {
	return nil, itemdomain.ErrItemNotFound
}

func (m *mockItemRepo) FindAllByOwner(ctx context.Context, userID uint) ([]itemdomain.Item, error) {
	return m.items[userID], nil
}

func (m *mockItemRepo) FindLowStockByOwner(ctx context.Context, userID uint) ([]itemdomain.Item, error) {
	return nil, nil
}

func (m *mockItemRepo) Update(ctx context.Context, item *itemdomain.Item, adj *itemdomain.Adjustment) error {
	return nil
}

func (m *mockItemRepo) Delete(ctx context.Context, id, userID uint) error { return nil }

func TestGetStats_EmptyCatalog(t *testing.T) {
	h := NewGetStatsHandler(&mockItemRepo{items: map[uint][]itemdomain.Item{}})

	stats, err := h.Handle(context.Background(), GetStatsQuery{UserID: 1})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if stats.Items.TotalItems != 0 || stats.Items.TotalQuantity != 0 {
		t.Errorf("expected zero item stats, got %+v", stats.Items)
	}
	if stats.TotalValue != 0 || stats.LowStock != 0 {
		t.Errorf("expected zero value and low stock, got value=%f low=%d", stats.TotalValue, stats.LowStock)
	}
}

func TestGetStats_MixedCatalog(t *testing.T) {
	repo := &mockItemRepo{items: map[uint][]itemdomain.Item{
		1: {
			{Quantity: 10, MinStock: 2, Price: 5.00},  // healthy
			{Quantity: 3, MinStock: 3, Price: 10.00},  // at threshold: low
			{Quantity: 0, MinStock: 5, Price: 100.00}, // empty: low
		},
		2: {
			{Quantity: 999, MinStock: 0, Price: 1.00}, // other owner, must not count
		},
	}}
	h := NewGetStatsHandler(repo)

	stats, err := h.Handle(context.Background(), GetStatsQuery{UserID: 1})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if stats.Items.TotalItems != 3 {
		t.Errorf("total items = %d, want 3", stats.Items.TotalItems)
	}
	if stats.Items.TotalQuantity != 13 {
		t.Errorf("total quantity = %d, want 13", stats.Items.TotalQuantity)
	}
	if math.Abs(stats.TotalValue-80.00) > 1e-9 {
		t.Errorf("total value = %f, want 80.00", stats.TotalValue)
	}
	if stats.LowStock != 2 {
		t.Errorf("low stock = %d, want 2", stats.LowStock)
	}
}

func TestGetStats_NegativeQuantities(t *testing.T) {
	repo := &mockItemRepo{items: map[uint][]itemdomain.Item{
		1: {
			{Quantity: -4, MinStock: 0, Price: 2.50},
			{Quantity: 10, MinStock: 0, Price: 1.00},
		},
	}}
	h := NewGetStatsHandler(repo)

	stats, err := h.Handle(context.Background(), GetStatsQuery{UserID: 1})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	// Negative quantities subtract from the totals rather than clamping
	if stats.Items.TotalQuantity != 6 {
		t.Errorf("total quantity = %d, want 6", stats.Items.TotalQuantity)
	}
	if math.Abs(stats.TotalValue-0.00) > 1e-9 {
		t.Errorf("total value = %f, want 0.00", stats.TotalValue)
	}
	if stats.LowStock != 1 {
		t.Errorf("low stock = %d, want 1", stats.LowStock)
	}
}
