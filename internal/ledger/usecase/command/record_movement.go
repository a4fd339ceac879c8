package command

import (
	"context"
	"time"

	"github.com/tair/inventory-tracker/internal/ledger/domain"
)

// RecordMovementCommand represents the command to record a stock movement.
// This is the single entry point for quantity changes driven by stock
// in/out events.
type RecordMovementCommand struct {
	ItemID   uint
	Type     string // "in" or "out"
	Quantity int    // positive magnitude
	Notes    string
	UserID   uint // the acting user; must own the item
}

// RecordMovementHandler coordinates the atomic ledger append + quantity
// update. After it succeeds, the item's stored quantity equals the signed
// sum of the item's ledger history.
type RecordMovementHandler struct {
	repo domain.LedgerRepository
}

// NewRecordMovementHandler creates a new record movement handler
func NewRecordMovementHandler(repo domain.LedgerRepository) *RecordMovementHandler {
	return &RecordMovementHandler{repo: repo}
}

// Handle executes the record movement command
func (h *RecordMovementHandler) Handle(ctx context.Context, cmd RecordMovementCommand) (*domain.StockTransaction, error) {
	if cmd.ItemID == 0 {
		return nil, domain.ErrItemRequired
	}
	if cmd.Type != domain.DirectionIn && cmd.Type != domain.DirectionOut {
		return nil, domain.ErrInvalidDirection
	}
	if cmd.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	txn := &domain.StockTransaction{
		ItemID:    cmd.ItemID,
		Type:      cmd.Type,
		Quantity:  cmd.Quantity,
		Notes:     cmd.Notes,
		UserID:    cmd.UserID,
		CreatedAt: time.Now(),
	}

	// Both writes succeed or neither does; ownership is re-verified inside
	// the same transaction.
	if err := h.repo.Record(ctx, txn); err != nil {
		return nil, err
	}

	return txn, nil
}
