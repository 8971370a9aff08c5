package recommendation

import (
	"time"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tair/shopping-advisor/internal/recommendation/delivery/http"
	"github.com/tair/shopping-advisor/internal/recommendation/domain"
	"github.com/tair/shopping-advisor/internal/recommendation/intent"
	"github.com/tair/shopping-advisor/internal/recommendation/mood"
	"github.com/tair/shopping-advisor/internal/recommendation/repository"
	"github.com/tair/shopping-advisor/internal/recommendation/usecase/command"
	"github.com/tair/shopping-advisor/internal/recommendation/usecase/query"
)

// MoodProfilesPath points at a YAML profile table; empty selects the built-in one
type MoodProfilesPath string

// CatalogTTL bounds how long a cached catalog snapshot is served
type CatalogTTL time.Duration

// Advisor bundles what the entry point needs from the recommendation context
type Advisor struct {
	Handler    *http.RecommendationHandler
	Invalidate *command.InvalidateCatalogHandler
	Catalog    *repository.GormCatalogRepositoryWithTracing
}

// ProvideCatalogRepository provides the traced GORM catalog repository
func ProvideCatalogRepository(db *gorm.DB) *repository.GormCatalogRepositoryWithTracing {
	return repository.NewGormCatalogRepositoryWithTracing(db)
}

// ProvideCachedCatalog provides the Redis-backed catalog view
func ProvideCachedCatalog(inner *repository.GormCatalogRepositoryWithTracing, client *redis.Client, ttl CatalogTTL) *repository.CachedCatalogRepository {
	return repository.NewCachedCatalogRepository(inner, client, time.Duration(ttl))
}

// ProvideResolver loads the mood profile table
func ProvideResolver(path MoodProfilesPath) (*mood.Resolver, error) {
	return mood.NewResolver(string(path))
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCatalogRepository,
	ProvideCachedCatalog,
	wire.Bind(new(domain.CatalogRepository), new(*repository.CachedCatalogRepository)),
	wire.Bind(new(domain.CatalogInvalidator), new(*repository.CachedCatalogRepository)),
)

var QuerySet = wire.NewSet(
	intent.NewClassifier,
	ProvideResolver,
	query.NewChatHandler,
	query.NewMoodSuggestionsHandler,
	query.NewClassifyIntentHandler,
	query.NewResolveProfileHandler,
	query.NewListProfilesHandler,
	query.NewCatalogStatsHandler,
)

var CommandSet = wire.NewSet(
	command.NewInvalidateCatalogHandler,
)

var HTTPSet = wire.NewSet(
	http.NewMetrics,
	http.NewRecommendationHandler,
)
