package command

import (
	"context"
	"fmt"
	"time"

	"github.com/tair/inventory-tracker/internal/item/domain"
)

// CreateItemCommand represents the command to create an item
type CreateItemCommand struct {
	Name     string
	SKU      string
	Category string
	Quantity int
	MinStock int
	Price    float64
	Supplier string
	UserID   uint
}

// CreateItemHandler handles item creation
type CreateItemHandler struct {
	repo domain.ItemRepository
}

// NewCreateItemHandler creates a new create item handler
func NewCreateItemHandler(repo domain.ItemRepository) *CreateItemHandler {
	return &CreateItemHandler{repo: repo}
}

// Handle executes the create item command
func (h *CreateItemHandler) Handle(ctx context.Context, cmd CreateItemCommand) (*domain.Item, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if cmd.SKU == "" {
		return nil, fmt.Errorf("%w: sku is required", domain.ErrInvalidInput)
	}
	if cmd.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrInvalidInput)
	}
	if cmd.UserID == 0 {
		return nil, fmt.Errorf("%w: owner is required", domain.ErrInvalidInput)
	}

	// SKU is unique across the whole catalog, not per owner
	if existing, _ := h.repo.FindBySKU(ctx, cmd.SKU); existing != nil {
		return nil, domain.ErrSKUExists
	}

	item := &domain.Item{
		Name:      cmd.Name,
		SKU:       cmd.SKU,
		Category:  cmd.Category,
		Quantity:  cmd.Quantity,
		MinStock:  cmd.MinStock,
		Price:     cmd.Price,
		Supplier:  cmd.Supplier,
		UserID:    cmd.UserID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}
