package query

import (
	"context"
	"fmt"

	"github.com/tair/inventory-tracker/internal/item/domain"
)

// LowStockQuery represents the query for items at or below min stock
type LowStockQuery struct {
	UserID uint
}

// LowStockHandler handles low stock query
type LowStockHandler struct {
	repo domain.ItemRepository
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(repo domain.ItemRepository) *LowStockHandler {
	return &LowStockHandler{repo: repo}
}

// Handle executes the low stock query
func (h *LowStockHandler) Handle(ctx context.Context, q LowStockQuery) ([]domain.Item, error) {
	items, err := h.repo.FindLowStockByOwner(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock items: %w", err)
	}
	return items, nil
}
