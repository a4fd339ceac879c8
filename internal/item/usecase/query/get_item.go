package query

import (
	"context"
	"fmt"

	"github.com/tair/inventory-tracker/internal/item/domain"
)

// GetItemQuery represents the query to get one owned item
type GetItemQuery struct {
	ID     uint
	UserID uint
}

// GetItemHandler handles get item query
type GetItemHandler struct {
	repo domain.ItemRepository
}

// NewGetItemHandler creates a new get item handler
func NewGetItemHandler(repo domain.ItemRepository) *GetItemHandler {
	return &GetItemHandler{repo: repo}
}

// Handle executes the get item query
func (h *GetItemHandler) Handle(ctx context.Context, q GetItemQuery) (*domain.Item, error) {
	if q.ID == 0 {
		return nil, fmt.Errorf("%w: item id is required", domain.ErrInvalidInput)
	}

	item, err := h.repo.FindByOwner(ctx, q.ID, q.UserID)
	if err != nil {
		return nil, err
	}

	return item, nil
}
