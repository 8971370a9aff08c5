package domain

import (
	"context"
	"time"
)

// CatalogRepository supplies products to the pipeline.
type CatalogRepository interface {
	// ListAvailable returns in-stock products priced at or below maxPrice.
	// A non-positive or infinite maxPrice means no price ceiling.
	ListAvailable(ctx context.Context, maxPrice float64) ([]Product, error)
	// ListAll returns every active catalog product, in stock or not.
	ListAll(ctx context.Context) ([]Product, error)
}

// CatalogInvalidator drops any cached catalog snapshot.
type CatalogInvalidator interface {
	Invalidate(ctx context.Context) error
}

// RecommendationServed is published after a reply references products.
type RecommendationServed struct {
	Flow       string    `json:"flow"`
	Intent     Intent    `json:"intent,omitempty"`
	Mood       string    `json:"mood,omitempty"`
	Occasion   string    `json:"occasion,omitempty"`
	ProductIDs []string  `json:"product_ids"`
	UserID     uint      `json:"user_id,omitempty"`
	ServedAt   time.Time `json:"served_at"`
}

// EventPublisher emits recommendation events.
type EventPublisher interface {
	PublishRecommendationServed(ctx context.Context, event RecommendationServed) error
}

const (
	FlowChat = "chat"
	FlowMood = "mood"
)
