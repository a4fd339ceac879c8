package query

import (
	"context"
	"fmt"

	"github.com/tair/inventory-tracker/internal/item/domain"
)

// ListItemsQuery represents the query to list an owner's items
type ListItemsQuery struct {
	UserID uint
}

// ListItemsHandler handles list items query
type ListItemsHandler struct {
	repo domain.ItemRepository
}

// NewListItemsHandler creates a new list items handler
func NewListItemsHandler(repo domain.ItemRepository) *ListItemsHandler {
	return &ListItemsHandler{repo: repo}
}

// Handle executes the list items query, newest-created first
func (h *ListItemsHandler) Handle(ctx context.Context, q ListItemsQuery) ([]domain.Item, error) {
	items, err := h.repo.FindAllByOwner(ctx, q.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}
