package domain

import "strings"

// Product is a catalog item as seen by the recommendation pipeline.
// Values are owned by the catalog and never mutated here.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Tags        []string `json:"tags,omitempty"`
	InStock     bool     `json:"inStock"`
}

// SearchText returns the lowercased title and description joined by a space.
func (p Product) SearchText() string {
	return strings.ToLower(p.Title + " " + p.Description)
}

// HasTag reports whether the product carries tag, compared case-insensitively.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// InCategory reports whether the product category equals any of categories,
// ignoring case.
func (p Product) InCategory(categories []string) bool {
	for _, c := range categories {
		if strings.EqualFold(p.Category, c) {
			return true
		}
	}
	return false
}

// Summary is the product projection returned with mood suggestions.
type Summary struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

// Summarize projects p into a Summary.
func (p Product) Summarize() Summary {
	return Summary{
		ID:          p.ID,
		Title:       p.Title,
		Category:    p.Category,
		Price:       p.Price,
		Description: p.Description,
	}
}

// CloneProducts copies the slice header and each product's tag slice so
// the pipeline never aliases caller-owned data.
func CloneProducts(products []Product) []Product {
	if products == nil {
		return nil
	}
	out := make([]Product, len(products))
	for i, p := range products {
		if p.Tags != nil {
			p.Tags = append([]string(nil), p.Tags...)
		}
		out[i] = p
	}
	return out
}
