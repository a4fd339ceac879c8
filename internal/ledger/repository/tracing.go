package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/internal/ledger/domain"
)

var tracer = otel.Tracer("ledger-repository")

// GormLedgerRepositoryWithTracing wraps GormLedgerRepository with tracing
type GormLedgerRepositoryWithTracing struct {
	*GormLedgerRepository
}

// NewGormLedgerRepositoryWithTracing creates a new repository with tracing
func NewGormLedgerRepositoryWithTracing(db *gorm.DB) *GormLedgerRepositoryWithTracing {
	return &GormLedgerRepositoryWithTracing{
		GormLedgerRepository: NewGormLedgerRepository(db),
	}
}

// Record traces the atomic append + quantity update
func (r *GormLedgerRepositoryWithTracing) Record(ctx context.Context, txn *domain.StockTransaction) error {
	ctx, span := tracer.Start(ctx, "repository.Record",
		trace.WithAttributes(
			attribute.Int("transaction.item_id", int(txn.ItemID)),
			attribute.String("transaction.type", txn.Type),
			attribute.Int("transaction.quantity", txn.Quantity),
			attribute.Int("transaction.user_id", int(txn.UserID)),
		),
	)
	defer span.End()

	err := r.GormLedgerRepository.Record(ctx, txn)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("transaction.id", int(txn.ID)))
	return nil
}

// FindByUser traces history listings
func (r *GormLedgerRepositoryWithTracing) FindByUser(ctx context.Context, userID, itemID uint, limit int) ([]domain.TransactionWithItem, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByUser",
		trace.WithAttributes(
			attribute.Int("transaction.user_id", int(userID)),
			attribute.Int("transaction.item_id", int(itemID)),
		),
	)
	defer span.End()

	rows, err := r.GormLedgerRepository.FindByUser(ctx, userID, itemID, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("transaction.count", len(rows)))
	return rows, nil
}
