package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrSKUExists    = errors.New("sku already exists")
	ErrInvalidInput = errors.New("invalid input")
)

// Item represents a tracked stock-keeping unit owned by a user
type Item struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	SKU       string         `json:"sku" gorm:"uniqueIndex;not null"` // unique across the whole catalog
	Category  string         `json:"category"`
	Quantity  int            `json:"quantity" gorm:"not null;default:0"`
	MinStock  int            `json:"min_stock" gorm:"not null;default:0"`
	Price     float64        `json:"price" gorm:"not null;default:0"`
	Supplier  string         `json:"supplier"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Item) TableName() string {
	return "items"
}

// IsLowStock reports whether the item is at or below its minimum stock level
func (i *Item) IsLowStock() bool {
	return i.Quantity <= i.MinStock
}

// Adjustment describes a ledger entry synthesized when an item update
// changes the stored quantity outside the movement path.
type Adjustment struct {
	Direction string // "in" or "out"
	Quantity  int    // positive magnitude
	Notes     string
}

// NewAdjustment returns the adjustment needed to move oldQty to newQty,
// or nil when the quantity is unchanged.
func NewAdjustment(oldQty, newQty int) *Adjustment {
	delta := newQty - oldQty
	if delta == 0 {
		return nil
	}

	adj := &Adjustment{Direction: "in", Quantity: delta, Notes: "manual adjustment via item update"}
	if delta < 0 {
		adj.Direction = "out"
		adj.Quantity = -delta
	}
	return adj
}

// ItemRepository defines the contract for item data access.
// All reads and writes are scoped to the owning user.
type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	FindBySKU(ctx context.Context, sku string) (*Item, error)
	FindByOwner(ctx context.Context, id, userID uint) (*Item, error)
	FindAllByOwner(ctx context.Context, userID uint) ([]Item, error)
	FindLowStockByOwner(ctx context.Context, userID uint) ([]Item, error)
	// Update replaces the item's fields wholesale; when adj is non-nil an
	// adjustment ledger entry is written in the same transaction.
	Update(ctx context.Context, item *Item, adj *Adjustment) error
	Delete(ctx context.Context, id, userID uint) error
}
