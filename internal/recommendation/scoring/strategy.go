// Package scoring ranks products against a shopping context or a mood
// profile. Every strategy is a fold over independent factors.
package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
	"github.com/tair/shopping-advisor/internal/recommendation/lexicon"
)

// Contribution is one factor's score delta and optional reason.
type Contribution struct {
	Score  float64
	Reason string
}

// Factor scores one aspect of a product.
type Factor func(p domain.Product) Contribution

// Strategy scores a single product.
type Strategy interface {
	Name() string
	Score(p domain.Product) domain.ScoredCandidate
}

// Rank scores every product and orders them by descending score. Ties keep
// catalog order.
func Rank(s Strategy, products []domain.Product) []domain.ScoredCandidate {
	ranked := make([]domain.ScoredCandidate, 0, len(products))
	for _, p := range products {
		ranked = append(ranked, s.Score(p))
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// fold sums the factor contributions and collects non-empty reasons in
// factor order.
func fold(p domain.Product, factors []Factor) domain.ScoredCandidate {
	c := domain.ScoredCandidate{Product: p}
	for _, f := range factors {
		contribution := f(p)
		c.Score += contribution.Score
		if contribution.Reason != "" {
			c.Reasons = append(c.Reasons, contribution.Reason)
		}
	}
	return c
}

// proximity decays linearly from limit at the target price to zero at a
// distance equal to the target.
func proximity(price, target, limit float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Max(0, limit-limit*math.Abs(price-target)/target)
}

// productText is the normalized title, description and tags of p.
func productText(p domain.Product) string {
	return lexicon.Normalize(p.Title + " " + p.Description + " " + strings.Join(p.Tags, " "))
}
