package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	itemdomain "github.com/tair/inventory-tracker/internal/item/domain"
	"github.com/tair/inventory-tracker/internal/ledger/domain"
)

// historyLimit caps transaction listings to the most recent entries
const historyLimit = 100

// GormLedgerRepository implements LedgerRepository using GORM
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GORM ledger repository
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormLedgerRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.StockTransaction{})
}

// Record appends a ledger entry and applies its signed delta to the item's
// quantity inside one database transaction. Returning an error from the
// closure rolls both writes back, so a failed quantity update can never
// leave an orphan ledger row. The quantity update is scoped to
// (item_id, user_id), which re-verifies ownership atomically: zero rows
// affected means the actor does not own the item and the append is undone.
func (r *GormLedgerRepository) Record(ctx context.Context, txn *domain.StockTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(txn).Error; err != nil {
			return fmt.Errorf("failed to record transaction: %w", err)
		}

		result := tx.Model(&itemdomain.Item{}).
			Where("id = ? AND user_id = ?", txn.ItemID, txn.UserID).
			Updates(map[string]interface{}{
				"quantity":   gorm.Expr("quantity + ?", txn.Delta()),
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update quantity: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrItemNotFound
		}

		return nil
	})
}

// FindByUser returns the actor's entries newest first, at most limit
// (capped at 100), optionally filtered to one item, each joined with its
// item's name and sku at read time. The raw join deliberately ignores item
// tombstones so history stays readable after an item is deleted.
func (r *GormLedgerRepository) FindByUser(ctx context.Context, userID, itemID uint, limit int) ([]domain.TransactionWithItem, error) {
	if limit <= 0 || limit > historyLimit {
		limit = historyLimit
	}

	query := r.db.WithContext(ctx).Table("stock_transactions AS t").
		Select("t.*, i.name AS item_name, i.sku AS sku").
		Joins("JOIN items i ON i.id = t.item_id").
		Where("t.user_id = ?", userID)

	if itemID != 0 {
		query = query.Where("t.item_id = ?", itemID)
	}

	var rows []domain.TransactionWithItem
	if err := query.Order("t.created_at DESC").Limit(limit).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return rows, nil
}
