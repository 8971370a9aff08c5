package query

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
	"github.com/tair/shopping-advisor/internal/recommendation/filter"
	"github.com/tair/shopping-advisor/pkg/logger"
)

var tracer = otel.Tracer("recommendation-usecase")

// Settings tunes the pipelines.
type Settings struct {
	ChatLimit int
	MoodLimit int
}

// DefaultSettings returns the stock selection sizes.
func DefaultSettings() Settings {
	return Settings{ChatLimit: 5, MoodLimit: 3}
}

// fetchCatalog treats any repository failure as an empty catalog so the
// pipeline can degrade to its fallbacks.
func fetchCatalog(ctx context.Context, repo domain.CatalogRepository, maxPrice float64) []domain.Product {
	products, err := repo.ListAvailable(ctx, maxPrice)
	if err != nil {
		logger.Warn(ctx).Err(err).Float64("max_price", maxPrice).Msg("Catalog unavailable, continuing with empty candidate set")
		return nil
	}
	return domain.CloneProducts(products)
}

// restrictToCandidates narrows products to externally supplied candidate
// IDs when at least one of them is present.
func restrictToCandidates(products []domain.Product, ids []string) []domain.Product {
	if restricted := filter.ByIDs(products, ids); len(restricted) > 0 {
		return restricted
	}
	return products
}

func publish(ctx context.Context, publisher domain.EventPublisher, event domain.RecommendationServed) {
	if publisher == nil || len(event.ProductIDs) == 0 {
		return
	}
	event.ServedAt = time.Now().UTC()
	if err := publisher.PublishRecommendationServed(ctx, event); err != nil {
		logger.Warn(ctx).Err(err).Str("flow", event.Flow).Msg("Failed to publish recommendation event")
	}
}
