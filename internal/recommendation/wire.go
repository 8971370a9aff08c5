//go:build wireinject
// +build wireinject

package recommendation

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
	"github.com/tair/shopping-advisor/internal/recommendation/usecase/query"
)

// InitializeAdvisor wires the recommendation context
func InitializeAdvisor(
	db *gorm.DB,
	client *redis.Client,
	publisher domain.EventPublisher,
	reg prometheus.Registerer,
	settings query.Settings,
	path MoodProfilesPath,
	ttl CatalogTTL,
) (*Advisor, error) {
	wire.Build(
		RepositorySet,
		QuerySet,
		CommandSet,
		HTTPSet,
		wire.Struct(new(Advisor), "*"),
	)
	return nil, nil
}
