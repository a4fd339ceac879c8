package domain

import (
	"context"
	"errors"
	"time"
)

// Movement directions
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

var (
	ErrItemRequired     = errors.New("item id is required")
	ErrInvalidDirection = errors.New("type must be \"in\" or \"out\"")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrItemNotFound     = errors.New("item not found")
)

// StockTransaction is one append-only ledger entry. Entries are never
// updated or deleted after creation.
type StockTransaction struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ItemID    uint      `json:"item_id" gorm:"not null;index"`
	Type      string    `json:"type" gorm:"not null"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	Notes     string    `json:"notes"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (StockTransaction) TableName() string {
	return "stock_transactions"
}

// Delta returns the signed quantity change this entry represents
func (t *StockTransaction) Delta() int {
	if t.Type == DirectionIn {
		return t.Quantity
	}
	return -t.Quantity
}

// TransactionWithItem is a ledger entry enriched with its item's name and
// sku at read time.
type TransactionWithItem struct {
	StockTransaction
	ItemName string `json:"item_name"`
	SKU      string `json:"sku"`
}

// LedgerRepository defines the contract for ledger data access
type LedgerRepository interface {
	// Record appends txn and applies its signed delta to the owning item's
	// quantity as one atomic unit. The quantity update is scoped to
	// (txn.ItemID, txn.UserID); when no row matches, the append is rolled
	// back and ErrItemNotFound returned.
	Record(ctx context.Context, txn *StockTransaction) error
	// FindByUser returns the actor's entries, newest first, at most limit,
	// optionally filtered to one item (itemID == 0 means no filter).
	FindByUser(ctx context.Context, userID, itemID uint, limit int) ([]TransactionWithItem, error)
}
