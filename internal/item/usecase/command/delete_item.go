package command

import (
	"context"
	"fmt"

	"github.com/tair/inventory-tracker/internal/item/domain"
)

// DeleteItemCommand represents the command to delete an item
type DeleteItemCommand struct {
	ID     uint
	UserID uint
}

// DeleteItemHandler handles item deletion
type DeleteItemHandler struct {
	repo domain.ItemRepository
}

// NewDeleteItemHandler creates a new delete item handler
func NewDeleteItemHandler(repo domain.ItemRepository) *DeleteItemHandler {
	return &DeleteItemHandler{repo: repo}
}

// Handle executes the delete item command. The item row becomes a
// tombstone; its ledger entries are retained.
func (h *DeleteItemHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("%w: item id is required", domain.ErrInvalidInput)
	}

	if err := h.repo.Delete(ctx, cmd.ID, cmd.UserID); err != nil {
		return err
	}

	return nil
}
