package command

import (
	"context"
	"fmt"

	"github.com/tair/inventory-tracker/internal/item/domain"
)

// UpdateItemCommand replaces an item's fields wholesale. Callers must
// resend full state; there are no partial-field semantics.
type UpdateItemCommand struct {
	ID       uint
	Name     string
	SKU      string
	Category string
	Quantity int
	MinStock int
	Price    float64
	Supplier string
	UserID   uint
}

// UpdateItemHandler handles item updates
type UpdateItemHandler struct {
	repo domain.ItemRepository
}

// NewUpdateItemHandler creates a new update item handler
func NewUpdateItemHandler(repo domain.ItemRepository) *UpdateItemHandler {
	return &UpdateItemHandler{repo: repo}
}

// Handle executes the update item command. When the submitted quantity
// differs from the stored one, an adjustment ledger entry is synthesized so
// the quantity stays equal to the signed ledger sum.
func (h *UpdateItemHandler) Handle(ctx context.Context, cmd UpdateItemCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("%w: item id is required", domain.ErrInvalidInput)
	}
	if cmd.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if cmd.SKU == "" {
		return fmt.Errorf("%w: sku is required", domain.ErrInvalidInput)
	}

	existing, err := h.repo.FindByOwner(ctx, cmd.ID, cmd.UserID)
	if err != nil {
		return err
	}

	item := &domain.Item{
		ID:       cmd.ID,
		Name:     cmd.Name,
		SKU:      cmd.SKU,
		Category: cmd.Category,
		Quantity: cmd.Quantity,
		MinStock: cmd.MinStock,
		Price:    cmd.Price,
		Supplier: cmd.Supplier,
		UserID:   cmd.UserID,
	}

	adj := domain.NewAdjustment(existing.Quantity, cmd.Quantity)
	if err := h.repo.Update(ctx, item, adj); err != nil {
		return err
	}

	return nil
}
