package intent

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
	"github.com/tair/shopping-advisor/internal/recommendation/lexicon"
)

func TestExtractBudget(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *domain.BudgetRange
	}{
		{"under", "show me watches under 1000", &domain.BudgetRange{Min: 0, Max: 1000}},
		{"below with currency", "headphones below $1,299.99", &domain.BudgetRange{Min: 0, Max: 1299.99}},
		{"up to with k", "a laptop up to 2k", &domain.BudgetRange{Min: 0, Max: 2000}},
		{"around", "something around 100", &domain.BudgetRange{Min: 80, Max: 120}},
		{"between", "between 50 and 200", &domain.BudgetRange{Min: 50, Max: 200}},
		{"between reversed", "between 200 and 50", &domain.BudgetRange{Min: 50, Max: 200}},
		{"from to", "from £30 to £60", &domain.BudgetRange{Min: 30, Max: 60}},
		{"over", "over 500", &domain.BudgetRange{Min: 500, Max: math.Inf(1)}},
		{"budget of", "my budget is 300", &domain.BudgetRange{Min: 0, Max: 300}},
		{"first family wins", "over 100 but under 300", &domain.BudgetRange{Min: 0, Max: 300}},
		{"none", "a red dress", nil},
		{"number without phrasing", "size 10 shoes", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractBudget(lexicon.Normalize(tt.text))
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, tt.want.Min, got.Min, 1e-9)
			if math.IsInf(tt.want.Max, 1) {
				assert.True(t, got.Unbounded())
			} else {
				assert.InDelta(t, tt.want.Max, got.Max, 1e-9)
			}
		})
	}
}
