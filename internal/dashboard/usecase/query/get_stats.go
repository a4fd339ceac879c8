package query

import (
	"context"
	"fmt"

	itemdomain "github.com/tair/inventory-tracker/internal/item/domain"
)

// GetStatsQuery represents the query for an owner's dashboard statistics
type GetStatsQuery struct {
	UserID uint
}

// ItemStats groups the item count and quantity totals
type ItemStats struct {
	TotalItems    int64 `json:"total_items"`
	TotalQuantity int64 `json:"total_quantity"`
}

// DashboardStats represents the derived dashboard statistics. Values are
// recomputed on every call; nothing is cached.
type DashboardStats struct {
	Items      ItemStats `json:"items"`
	TotalValue float64   `json:"total_value"`
	LowStock   int64     `json:"low_stock"`
}

// GetStatsHandler derives dashboard statistics by scanning the owner's
// catalog. It performs no writes.
type GetStatsHandler struct {
	repo itemdomain.ItemRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo itemdomain.ItemRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the get stats query
func (h *GetStatsHandler) Handle(ctx context.Context, q GetStatsQuery) (*DashboardStats, error) {
	items, err := h.repo.FindAllByOwner(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch items for stats: %w", err)
	}

	stats := &DashboardStats{}
	for i := range items {
		item := &items[i]
		stats.Items.TotalItems++
		stats.Items.TotalQuantity += int64(item.Quantity)
		stats.TotalValue += float64(item.Quantity) * item.Price
		if item.IsLowStock() {
			stats.LowStock++
		}
	}

	return stats, nil
}
