package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
)

// CatalogStatsQuery represents the query to get catalog statistics
type CatalogStatsQuery struct{}

// CatalogStats summarizes the catalog the recommender sees
type CatalogStats struct {
	TotalProducts   int            `json:"total_products"`
	InStockProducts int            `json:"in_stock_products"`
	AveragePrice    float64        `json:"average_price"`
	TotalCategories int            `json:"total_categories"`
	PerCategory     map[string]int `json:"per_category"`
}

// CatalogStatsHandler handles catalog stats query
type CatalogStatsHandler struct {
	repo domain.CatalogRepository
}

// NewCatalogStatsHandler creates a new catalog stats handler
func NewCatalogStatsHandler(repo domain.CatalogRepository) *CatalogStatsHandler {
	return &CatalogStatsHandler{repo: repo}
}

// Handle executes the catalog stats query
func (h *CatalogStatsHandler) Handle(ctx context.Context, _ CatalogStatsQuery) (*CatalogStats, error) {
	products, err := h.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	stats := &CatalogStats{
		TotalProducts: len(products),
		PerCategory:   make(map[string]int),
	}

	var totalPrice float64
	for _, p := range products {
		if p.InStock {
			stats.InStockProducts++
		}
		totalPrice += p.Price
		if p.Category != "" {
			stats.PerCategory[strings.ToLower(p.Category)]++
		}
	}

	if stats.TotalProducts > 0 {
		stats.AveragePrice = totalPrice / float64(stats.TotalProducts)
	}
	stats.TotalCategories = len(stats.PerCategory)

	return stats, nil
}
