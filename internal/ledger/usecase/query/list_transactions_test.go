package query

import (
	"context"
	"testing"
	"time"

	"github.com/tair/inventory-tracker/internal/ledger/domain"
)

// Mock LedgerRepository; stores entries oldest first and serves them
// newest first honoring the filter and limit, like the real repository.
type mockLedgerRepo struct {
	entries   []domain.TransactionWithItem
	lastLimit int
}

func (m *mockLedgerRepo) Record(ctx context.Context, txn *domain.StockTransaction) error {
	return nil
}

func (m *mockLedgerRepo) FindByUser(ctx context.Context, userID, itemID uint, limit int) ([]domain.TransactionWithItem, error) {
	m.lastLimit = limit
	var out []domain.TransactionWithItem
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		e := m.entries[i]
		if e.UserID != userID {
			continue
		}
		if itemID != 0 && e.ItemID != itemID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func seededRepo(count int) *mockLedgerRepo {
	repo := &mockLedgerRepo{}
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= count; i++ {
		repo.entries = append(repo.entries, domain.TransactionWithItem{
			StockTransaction: domain.StockTransaction{
				ID:        uint(i),
				ItemID:    uint(1 + i%2), // alternate between items 1 and 2
				Type:      "in",
				Quantity:  1,
				UserID:    1,
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			},
		})
	}
	return repo
}

func TestListTransactions_CapsAt100NewestFirst(t *testing.T) {
	repo := seededRepo(150)
	h := NewListTransactionsHandler(repo)

	rows, err := h.Handle(context.Background(), ListTransactionsQuery{UserID: 1})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}

	if repo.lastLimit != 100 {
		t.Errorf("requested limit = %d, want 100", repo.lastLimit)
	}
	if len(rows) != 100 {
		t.Fatalf("returned %d entries, want 100", len(rows))
	}
	if rows[0].ID != 150 {
		t.Errorf("first entry id = %d, want the newest (150)", rows[0].ID)
	}
	for i := 1; i < len(rows); i++ {
		if !rows[i].CreatedAt.Before(rows[i-1].CreatedAt) {
			t.Fatalf("entries not newest first at index %d", i)
		}
	}
}

func TestListTransactions_ItemFilter(t *testing.T) {
	repo := seededRepo(20)
	h := NewListTransactionsHandler(repo)

	rows, err := h.Handle(context.Background(), ListTransactionsQuery{UserID: 1, ItemID: 2})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if len(rows) != 10 {
		t.Fatalf("returned %d entries, want 10", len(rows))
	}
	for _, row := range rows {
		if row.ItemID != 2 {
			t.Errorf("entry %d has item id %d, want 2", row.ID, row.ItemID)
		}
	}
}

func TestListTransactions_OtherUsersExcluded(t *testing.T) {
	repo := seededRepo(5)
	h := NewListTransactionsHandler(repo)

	rows, err := h.Handle(context.Background(), ListTransactionsQuery{UserID: 2})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("returned %d entries for another user, want 0", len(rows))
	}
}
