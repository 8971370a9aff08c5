// Package filter narrows a product list by hard constraints.
package filter

import (
	"math"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
)

// Apply keeps in-stock products that satisfy the context budget and, when
// categories are requested, belong to one of them. An empty result is valid.
func Apply(products []domain.Product, ctx domain.ShoppingContext) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !p.InStock {
			continue
		}
		if ctx.Budget != nil && !ctx.Budget.Contains(p.Price) {
			continue
		}
		if len(ctx.Categories) > 0 && !p.InCategory(ctx.Categories) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// InStockWithin keeps in-stock products priced at or below maxPrice.
func InStockWithin(products []domain.Product, maxPrice float64) []domain.Product {
	return Apply(products, domain.ShoppingContext{
		Budget: &domain.BudgetRange{Min: math.Inf(-1), Max: maxPrice},
	})
}

// ByIDs keeps products whose ID is in ids, preserving product order.
func ByIDs(products []domain.Product, ids []string) []domain.Product {
	if len(ids) == 0 {
		return nil
	}
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []domain.Product
	for _, p := range products {
		if _, ok := want[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}
