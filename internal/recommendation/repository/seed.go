package repository

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

type seedItem struct {
	SKU         string   `json:"sku"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Tags        []string `json:"tags"`
	Inactive    bool     `json:"inactive"`
}

// DecodeSeed reads a JSON array of catalog items.
func DecodeSeed(r io.Reader) ([]CatalogItem, error) {
	var raw []seedItem
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode catalog seed: %w", err)
	}

	items := make([]CatalogItem, 0, len(raw))
	for i, s := range raw {
		if strings.TrimSpace(s.SKU) == "" || strings.TrimSpace(s.Title) == "" {
			return nil, fmt.Errorf("catalog seed item %d: sku and title are required", i)
		}
		if s.Price < 0 || s.Stock < 0 {
			return nil, fmt.Errorf("catalog seed item %q: negative price or stock", s.SKU)
		}
		items = append(items, CatalogItem{
			SKU:         s.SKU,
			Title:       s.Title,
			Description: s.Description,
			Category:    strings.ToLower(s.Category),
			Price:       s.Price,
			Stock:       s.Stock,
			IsActive:    !s.Inactive,
			Tags:        s.Tags,
		})
	}
	return items, nil
}

// LoadSeedFile decodes the seed file at path.
func LoadSeedFile(path string) ([]CatalogItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog seed: %w", err)
	}
	defer f.Close()
	return DecodeSeed(f)
}
