package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tair/inventory-tracker/internal/item/domain"
	ledgerdomain "github.com/tair/inventory-tracker/internal/ledger/domain"
	"gorm.io/gorm"
)

// GormItemRepository implements ItemRepository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM item repository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormItemRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Item{})
}

// Create inserts a new item
func (r *GormItemRepository) Create(ctx context.Context, item *domain.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// FindBySKU retrieves an item by SKU regardless of owner. SKUs are unique
// across the whole catalog.
func (r *GormItemRepository) FindBySKU(ctx context.Context, sku string) (*domain.Item, error) {
	var item domain.Item
	if err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	return &item, nil
}

// FindByOwner retrieves an item by ID scoped to its owner
func (r *GormItemRepository) FindByOwner(ctx context.Context, id, userID uint) (*domain.Item, error) {
	var item domain.Item
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	return &item, nil
}

// FindAllByOwner retrieves all of an owner's items, newest-created first
func (r *GormItemRepository) FindAllByOwner(ctx context.Context, userID uint) ([]domain.Item, error) {
	var items []domain.Item
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find items: %w", err)
	}
	return items, nil
}

// FindLowStockByOwner retrieves the owner's items where quantity <= min_stock
func (r *GormItemRepository) FindLowStockByOwner(ctx context.Context, userID uint) ([]domain.Item, error) {
	var items []domain.Item
	if err := r.db.WithContext(ctx).Where("user_id = ? AND quantity <= min_stock", userID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to find low stock items: %w", err)
	}
	return items, nil
}

// Update replaces the item's fields wholesale, scoped to (id, owner). When
// adj is non-nil, an adjustment ledger entry is appended in the same
// transaction so the quantity change stays auditable.
func (r *GormItemRepository) Update(ctx context.Context, item *domain.Item, adj *domain.Adjustment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&domain.Item{}).
			Where("id = ? AND user_id = ?", item.ID, item.UserID).
			Updates(map[string]interface{}{
				"name":       item.Name,
				"sku":        item.SKU,
				"category":   item.Category,
				"quantity":   item.Quantity,
				"min_stock":  item.MinStock,
				"price":      item.Price,
				"supplier":   item.Supplier,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to update item: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrItemNotFound
		}

		if adj != nil {
			entry := &ledgerdomain.StockTransaction{
				ItemID:   item.ID,
				Type:     adj.Direction,
				Quantity: adj.Quantity,
				Notes:    adj.Notes,
				UserID:   item.UserID,
			}
			if err := tx.Create(entry).Error; err != nil {
				return fmt.Errorf("failed to record adjustment: %w", err)
			}
		}

		return nil
	})
}

// Delete soft deletes an item scoped to (id, owner). Ledger entries are
// left untouched; the item row becomes a tombstone.
func (r *GormItemRepository) Delete(ctx context.Context, id, userID uint) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Item{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
