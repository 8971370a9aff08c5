package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/attribute"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
	"github.com/tair/shopping-advisor/internal/recommendation/filter"
	"github.com/tair/shopping-advisor/pkg/logger"
)

const (
	snapshotAvailable = "available"
	snapshotAll       = "all"
)

// CachedCatalogRepository serves catalog snapshots from Redis. Snapshots are
// keyed by a version counter, so invalidation is a single INCR and stale
// keys simply expire. Any Redis failure falls through to the inner
// repository.
type CachedCatalogRepository struct {
	inner  domain.CatalogRepository
	redis  *redis.Client
	ttl    time.Duration
	prefix string
}

// NewCachedCatalogRepository wraps inner. A nil client disables caching.
func NewCachedCatalogRepository(inner domain.CatalogRepository, client *redis.Client, ttl time.Duration) *CachedCatalogRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CachedCatalogRepository{
		inner:  inner,
		redis:  client,
		ttl:    ttl,
		prefix: "catalog",
	}
}

// ListAvailable caches the full in-stock snapshot and applies the price
// ceiling in memory.
func (r *CachedCatalogRepository) ListAvailable(ctx context.Context, maxPrice float64) ([]domain.Product, error) {
	if r.redis == nil {
		return r.inner.ListAvailable(ctx, maxPrice)
	}

	products, err := r.snapshot(ctx, snapshotAvailable, func(ctx context.Context) ([]domain.Product, error) {
		return r.inner.ListAvailable(ctx, math.Inf(1))
	})
	if err != nil {
		return nil, err
	}
	if !hasCeiling(maxPrice) {
		return products, nil
	}
	return filter.InStockWithin(products, maxPrice), nil
}

func (r *CachedCatalogRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	if r.redis == nil {
		return r.inner.ListAll(ctx)
	}
	return r.snapshot(ctx, snapshotAll, r.inner.ListAll)
}

// Invalidate bumps the snapshot version
func (r *CachedCatalogRepository) Invalidate(ctx context.Context) error {
	if r.redis == nil {
		return nil
	}
	_, span := tracer.Start(ctx, "cache.Invalidate")
	defer span.End()

	version, err := r.redis.Incr(ctx, r.versionKey()).Result()
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to bump catalog version: %w", err)
	}
	span.SetAttributes(attribute.Int64("catalog.version", version))
	return nil
}

func (r *CachedCatalogRepository) snapshot(ctx context.Context, name string, load func(context.Context) ([]domain.Product, error)) ([]domain.Product, error) {
	ctx, span := tracer.Start(ctx, "cache.Snapshot")
	defer span.End()
	span.SetAttributes(attribute.String("cache.snapshot", name))

	version, err := r.version(ctx)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Catalog cache unavailable, reading through")
		span.SetAttributes(attribute.Bool("cache.bypass", true))
		return load(ctx)
	}

	key := r.snapshotKey(version, name)
	if products, ok := r.get(ctx, key); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return products, nil
	}
	span.SetAttributes(attribute.Bool("cache.hit", false))

	products, err := load(ctx)
	if err != nil {
		return nil, err
	}
	r.set(ctx, key, products)
	return products, nil
}

func (r *CachedCatalogRepository) version(ctx context.Context) (int64, error) {
	v, err := r.redis.Get(ctx, r.versionKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func (r *CachedCatalogRepository) get(ctx context.Context, key string) ([]domain.Product, bool) {
	raw, err := r.redis.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn(ctx).Err(err).Str("key", key).Msg("Catalog cache read failed")
		}
		return nil, false
	}
	var products []domain.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Discarding corrupt catalog snapshot")
		return nil, false
	}
	return products, true
}

func (r *CachedCatalogRepository) set(ctx context.Context, key string, products []domain.Product) {
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := r.redis.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Catalog cache write failed")
	}
}

func (r *CachedCatalogRepository) versionKey() string {
	return r.prefix + ":version"
}

func (r *CachedCatalogRepository) snapshotKey(version int64, name string) string {
	return fmt.Sprintf("%s:v%d:%s", r.prefix, version, name)
}
