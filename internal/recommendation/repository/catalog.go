package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
)

type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

func (r *GormCatalogRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&CatalogItem{})
}

// Ping checks the underlying connection
func (r *GormCatalogRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *GormCatalogRepository) ListAvailable(ctx context.Context, maxPrice float64) ([]domain.Product, error) {
	var items []CatalogItem
	q := r.db.WithContext(ctx).
		Where("is_active = ? AND stock > 0", true)
	if hasCeiling(maxPrice) {
		q = q.Where("price <= ?", maxPrice)
	}
	if err := q.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return toDomain(items), nil
}

func (r *GormCatalogRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	var items []CatalogItem
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return toDomain(items), nil
}

// Upsert inserts or updates items keyed by SKU
func (r *GormCatalogRepository) Upsert(ctx context.Context, items []CatalogItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range items {
			var existing CatalogItem
			err := tx.Where("sku = ?", items[i].SKU).First(&existing).Error
			switch {
			case err == nil:
				items[i].ID = existing.ID
				items[i].CreatedAt = existing.CreatedAt
				if err := tx.Save(&items[i]).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&items[i]).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
}
