package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/inventory-tracker/internal/item/domain"
)

var tracer = otel.Tracer("item-repository")

// GormItemRepositoryWithTracing wraps GormItemRepository with tracing.
// The write paths and the owner-scoped lookup get their own spans; the
// remaining reads promote from the embedded repository.
type GormItemRepositoryWithTracing struct {
	*GormItemRepository
}

// NewGormItemRepositoryWithTracing creates a new repository with tracing
func NewGormItemRepositoryWithTracing(db *gorm.DB) *GormItemRepositoryWithTracing {
	return &GormItemRepositoryWithTracing{
		GormItemRepository: NewGormItemRepository(db),
	}
}

// Create traces item creation
func (r *GormItemRepositoryWithTracing) Create(ctx context.Context, item *domain.Item) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("item.name", item.Name),
			attribute.String("item.sku", item.SKU),
			attribute.Int("item.quantity", item.Quantity),
			attribute.Int("item.user_id", int(item.UserID)),
		),
	)
	defer span.End()

	err := r.GormItemRepository.Create(ctx, item)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("item.id", int(item.ID)))
	return nil
}

// FindByOwner traces owner-scoped lookups
func (r *GormItemRepositoryWithTracing) FindByOwner(ctx context.Context, id, userID uint) (*domain.Item, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByOwner",
		trace.WithAttributes(
			attribute.Int("item.id", int(id)),
			attribute.Int("item.user_id", int(userID)),
		),
	)
	defer span.End()

	item, err := r.GormItemRepository.FindByOwner(ctx, id, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.String("item.name", item.Name),
		attribute.String("item.sku", item.SKU),
	)
	return item, nil
}

// Update traces wholesale updates and adjustment synthesis
func (r *GormItemRepositoryWithTracing) Update(ctx context.Context, item *domain.Item, adj *domain.Adjustment) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("item.id", int(item.ID)),
			attribute.Int("item.quantity", item.Quantity),
			attribute.Bool("item.adjustment", adj != nil),
		),
	)
	defer span.End()

	err := r.GormItemRepository.Update(ctx, item, adj)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Delete traces owner-scoped deletes
func (r *GormItemRepositoryWithTracing) Delete(ctx context.Context, id, userID uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.Int("item.id", int(id)),
			attribute.Int("item.user_id", int(userID)),
		),
	)
	defer span.End()

	err := r.GormItemRepository.Delete(ctx, id, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
