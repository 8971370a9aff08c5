package kafka

import "time"

// RecommendationServedEvent is emitted after a reply references products
type RecommendationServedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	Flow       string    `json:"flow"`
	Intent     string    `json:"intent,omitempty"`
	Mood       string    `json:"mood,omitempty"`
	Occasion   string    `json:"occasion,omitempty"`
	ProductIDs []string  `json:"product_ids"`
	UserID     uint      `json:"user_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// CatalogChangedEvent signals that catalog rows were created, updated or removed
type CatalogChangedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID string    `json:"product_id"`
	Change    string    `json:"change"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeRecommendationServed = "recommendation.served"
	EventTypeCatalogChanged       = "catalog.changed"
)

// Kafka topics
const (
	TopicRecommendationsServed = "recommendations-served"
	TopicCatalogChanged        = "catalog-changed"
)
