package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
)

func candidate(id, category string, score float64) domain.ScoredCandidate {
	return domain.ScoredCandidate{
		Product: domain.Product{ID: id, Category: category, InStock: true},
		Score:   score,
	}
}

func ids(cs []domain.ScoredCandidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Product.ID)
	}
	return out
}

func TestSelectTop(t *testing.T) {
	ranked := []domain.ScoredCandidate{
		candidate("A", "cat1", 9),
		candidate("B", "cat1", 8),
		candidate("C", "cat2", 7),
		candidate("D", "cat3", 6),
	}

	tests := []struct {
		name  string
		count int
		want  []string
	}{
		{"diverse pass fills count", 3, []string{"A", "C", "D"}},
		{"second pass fills in rank order", 4, []string{"A", "B", "C", "D"}},
		{"fewer than count", 10, []string{"A", "B", "C", "D"}},
		{"single", 1, []string{"A"}},
		{"zero", 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(SelectTop(ranked, tt.count)))
		})
	}
}

func TestSelectTopSpreadsCategories(t *testing.T) {
	ranked := []domain.ScoredCandidate{
		candidate("e1", "electronics", 10),
		candidate("e2", "Electronics", 9),
		candidate("h1", "home", 8),
		candidate("h2", "home", 7),
		candidate("s1", "sports", 6),
		candidate("s2", "sports", 5),
	}

	got := SelectTop(ranked, 3)

	categories := map[string]bool{}
	for _, c := range got {
		categories[c.Product.Category] = true
	}
	assert.Len(t, got, 3)
	assert.Len(t, categories, 3)
}

func TestSelectTopRepeatsCategoryWhenExhausted(t *testing.T) {
	ranked := []domain.ScoredCandidate{
		candidate("a", "home", 3),
		candidate("b", "home", 2),
		candidate("c", "home", 1),
	}

	assert.Equal(t, []string{"a", "b"}, ids(SelectTop(ranked, 2)))
	assert.Empty(t, SelectTop(nil, 3))
}
