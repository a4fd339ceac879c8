package query

import (
	"context"
	"fmt"

	"github.com/tair/inventory-tracker/internal/ledger/domain"
)

// ListTransactionsQuery represents the query for an actor's movement history
type ListTransactionsQuery struct {
	UserID uint
	ItemID uint // 0 means no item filter
}

// ListTransactionsHandler handles list transactions query
type ListTransactionsHandler struct {
	repo domain.LedgerRepository
}

// NewListTransactionsHandler creates a new list transactions handler
func NewListTransactionsHandler(repo domain.LedgerRepository) *ListTransactionsHandler {
	return &ListTransactionsHandler{repo: repo}
}

// Handle returns at most the 100 most recent entries, newest first
func (h *ListTransactionsHandler) Handle(ctx context.Context, q ListTransactionsQuery) ([]domain.TransactionWithItem, error) {
	rows, err := h.repo.FindByUser(ctx, q.UserID, q.ItemID, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return rows, nil
}
