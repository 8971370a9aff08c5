package repository

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
)

var tracer = otel.Tracer("catalog-repository")

// GormCatalogRepositoryWithTracing wraps GormCatalogRepository with tracing
type GormCatalogRepositoryWithTracing struct {
	*GormCatalogRepository
}

// NewGormCatalogRepositoryWithTracing creates a new repository with tracing
func NewGormCatalogRepositoryWithTracing(db *gorm.DB) *GormCatalogRepositoryWithTracing {
	return &GormCatalogRepositoryWithTracing{
		GormCatalogRepository: NewGormCatalogRepository(db),
	}
}

// ListAvailable with tracing
func (r *GormCatalogRepositoryWithTracing) ListAvailable(ctx context.Context, maxPrice float64) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.ListAvailable",
		trace.WithAttributes(
			attribute.Bool("catalog.has_ceiling", hasCeiling(maxPrice)),
		),
	)
	defer span.End()
	if hasCeiling(maxPrice) {
		span.SetAttributes(attribute.Float64("catalog.max_price", maxPrice))
	}

	products, err := r.GormCatalogRepository.ListAvailable(ctx, maxPrice)
	if err != nil {
		addDBErrorToSpan(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("catalog.result_count", len(products)))
	return products, nil
}

// ListAll with tracing
func (r *GormCatalogRepositoryWithTracing) ListAll(ctx context.Context) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "repository.ListAll")
	defer span.End()

	products, err := r.GormCatalogRepository.ListAll(ctx)
	if err != nil {
		addDBErrorToSpan(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("catalog.result_count", len(products)))
	return products, nil
}

// Upsert with tracing
func (r *GormCatalogRepositoryWithTracing) Upsert(ctx context.Context, items []CatalogItem) error {
	ctx, span := tracer.Start(ctx, "repository.Upsert",
		trace.WithAttributes(attribute.Int("catalog.item_count", len(items))),
	)
	defer span.End()

	err := r.GormCatalogRepository.Upsert(ctx, items)
	addDBErrorToSpan(span, err)
	return err
}

// Helper function to add database error details to span
func addDBErrorToSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, fmt.Sprintf("database error: %v", err))
	}
}
