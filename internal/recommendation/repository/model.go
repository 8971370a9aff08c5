package repository

import (
	"math"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
)

// CatalogItem is the persisted catalog row
type CatalogItem struct {
	ID          uint   `gorm:"primaryKey"`
	SKU         string `gorm:"uniqueIndex;not null"`
	Title       string `gorm:"not null"`
	Description string
	Category    string         `gorm:"index;not null"`
	Price       float64        `gorm:"not null"`
	Stock       int            `gorm:"not null;default:0"`
	IsActive    bool           `gorm:"default:true"`
	Tags        pq.StringArray `gorm:"type:text[]"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name
func (CatalogItem) TableName() string {
	return "catalog_items"
}

// ToDomain maps the row to the pipeline's product view. The SKU is the
// product identifier exposed to clients.
func (c CatalogItem) ToDomain() domain.Product {
	var tags []string
	if len(c.Tags) > 0 {
		tags = append([]string(nil), c.Tags...)
	}
	return domain.Product{
		ID:          c.SKU,
		Title:       c.Title,
		Description: c.Description,
		Category:    c.Category,
		Price:       c.Price,
		Tags:        tags,
		InStock:     c.IsActive && c.Stock > 0,
	}
}

func toDomain(items []CatalogItem) []domain.Product {
	products := make([]domain.Product, len(items))
	for i, item := range items {
		products[i] = item.ToDomain()
	}
	return products
}

// hasCeiling reports whether maxPrice constrains the listing.
func hasCeiling(maxPrice float64) bool {
	return maxPrice > 0 && !math.IsInf(maxPrice, 1)
}
