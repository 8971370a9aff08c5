// Package selector picks a category-diverse top N from a ranked list.
package selector

import (
	"strings"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
)

// SelectTop takes the best candidate of each unused category first, then
// fills remaining slots in rank order. The result keeps rank order and
// never exceeds count.
func SelectTop(ranked []domain.ScoredCandidate, count int) []domain.ScoredCandidate {
	if count <= 0 || len(ranked) == 0 {
		return nil
	}

	picked := make([]bool, len(ranked))
	used := make(map[string]bool)
	n := 0

	for i, c := range ranked {
		if n == count {
			break
		}
		category := strings.ToLower(c.Product.Category)
		if used[category] {
			continue
		}
		used[category] = true
		picked[i] = true
		n++
	}

	for i := range ranked {
		if n == count {
			break
		}
		if !picked[i] {
			picked[i] = true
			n++
		}
	}

	out := make([]domain.ScoredCandidate, 0, n)
	for i, c := range ranked {
		if picked[i] {
			out = append(out, c)
		}
	}
	return out
}
