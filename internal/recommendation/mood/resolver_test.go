package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
)

func newResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver("")
	require.NoError(t, err)
	return r
}

func TestResolveExactMatch(t *testing.T) {
	p := newResolver(t).Resolve("  Romantic ", "DATE")

	assert.Equal(t, "romantic", p.Mood)
	assert.Equal(t, domain.BudgetPremium, p.BudgetStrategy)
	assert.Equal(t, []string{"clothing", "accessories", "beauty"}, p.PreferredCategories)
	assert.NotEmpty(t, p.Keywords)
}

func TestResolveOccasionOnlyTakesFirstEntry(t *testing.T) {
	p := newResolver(t).Resolve("sleepy", "work")

	assert.Equal(t, "focused", p.Mood)
	assert.Equal(t, "work", p.Occasion)
}

func TestResolveGeneric(t *testing.T) {
	p := newResolver(t).Resolve("Nostalgic", "Reunion")

	assert.Equal(t, "Nostalgic", p.Mood)
	assert.Equal(t, "Reunion", p.Occasion)
	assert.Equal(t, []string{"personal", "casual"}, p.IntentTags)
	assert.Equal(t, domain.KnownCategories, p.PreferredCategories)
	assert.Equal(t, domain.BudgetModerate, p.BudgetStrategy)
	assert.Contains(t, p.ExplanationTemplate, "Nostalgic")
	assert.Contains(t, p.ExplanationTemplate, "Reunion")
}

func TestResolveIsIdempotentAndIsolated(t *testing.T) {
	r := newResolver(t)

	first := r.Resolve("happy", "birthday")
	first.PreferredCategories[0] = "mutated"

	assert.Equal(t, "accessories", r.Resolve("happy", "birthday").PreferredCategories[0])
	assert.Equal(t, r.Resolve("x", "y"), r.Resolve("x", "y"))
}

func TestNewResolverFromYAML(t *testing.T) {
	t.Run("defaults strategy", func(t *testing.T) {
		r, err := NewResolverFromYAML([]byte(`
profiles:
  - mood: calm
    occasion: spa
    preferred_categories: [beauty]
    explanation_template: Calm.
`))
		require.NoError(t, err)
		assert.Equal(t, domain.BudgetModerate, r.Resolve("calm", "spa").BudgetStrategy)
	})

	t.Run("rejects unknown strategy", func(t *testing.T) {
		_, err := NewResolverFromYAML([]byte(`
profiles:
  - mood: calm
    occasion: spa
    preferred_categories: [beauty]
    budget_strategy: lavish
`))
		assert.Error(t, err)
	})

	t.Run("rejects missing categories", func(t *testing.T) {
		_, err := NewResolverFromYAML([]byte(`
profiles:
  - mood: calm
    occasion: spa
`))
		assert.Error(t, err)
	})

	t.Run("rejects bad yaml", func(t *testing.T) {
		_, err := NewResolverFromYAML([]byte(`profiles: [`))
		assert.Error(t, err)
	})
}

func TestNewResolverMissingFile(t *testing.T) {
	_, err := NewResolver("/nonexistent/profiles.yaml")
	assert.Error(t, err)
}

func TestBudgetStrategyFraction(t *testing.T) {
	assert.Equal(t, 0.6, domain.BudgetConservative.Fraction())
	assert.Equal(t, 0.75, domain.BudgetModerate.Fraction())
	assert.Equal(t, 0.9, domain.BudgetPremium.Fraction())
}
