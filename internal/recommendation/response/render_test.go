package response

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
)

func results(n int) []domain.ScoredCandidate {
	out := make([]domain.ScoredCandidate, n)
	for i := range out {
		out[i] = domain.ScoredCandidate{
			Product: domain.Product{
				ID:       fmt.Sprintf("p%d", i),
				Title:    fmt.Sprintf("Item %d", i),
				Category: "home",
				Price:    float64(10 * (i + 1)),
				InStock:  true,
			},
			Score: float64(100 - i),
		}
	}
	return out
}

func TestPrice(t *testing.T) {
	assert.Equal(t, "$1299.99", Price(1299.99))
	assert.Equal(t, "$700.00", Price(700))
	assert.Equal(t, "$0.10", Price(0.1))
}

func TestDisplayCap(t *testing.T) {
	assert.Equal(t, 5, DisplayCap(domain.IntentProductSearch))
	assert.Equal(t, 5, DisplayCap(domain.IntentBudgetFilter))
	assert.Equal(t, 3, DisplayCap(domain.IntentRecommendation))
	assert.Equal(t, 3, DisplayCap(domain.IntentGreeting))
}

func TestRenderCannedLines(t *testing.T) {
	greeting := Render(domain.IntentGreeting, domain.ShoppingContext{}, results(3), "hello")
	assert.Contains(t, greetings, greeting)
	assert.Equal(t, greeting, Render(domain.IntentGreeting, domain.ShoppingContext{}, nil, "hello"))

	offTopic := Render(domain.IntentOffTopic, domain.ShoppingContext{}, results(2), "weather?")
	assert.Contains(t, offTopicReplies, offTopic)
	assert.NotContains(t, offTopic, "Item")
}

func TestRenderZeroResultsNeverNamesProducts(t *testing.T) {
	ctx := domain.ShoppingContext{Budget: &domain.BudgetRange{Min: 0, Max: 50}, Categories: []string{"electronics"}}

	for intent := range branches {
		t.Run(string(intent), func(t *testing.T) {
			got := Render(intent, ctx, nil, "anything")
			assert.NotEmpty(t, got)
			assert.NotContains(t, got, "$0.00 -")
			assert.True(t, strings.HasSuffix(got, "?"), got)
		})
	}

	got := Render(domain.IntentProductSearch, ctx, nil, "")
	assert.Contains(t, got, "in electronics under $50.00")
}

func TestRenderSingle(t *testing.T) {
	one := results(1)
	one[0].Reasons = []string{"perfect for home"}

	got := Render(domain.IntentRecommendation, domain.ShoppingContext{}, one, "")
	assert.Equal(t, "I'd recommend the Item 0 at $10.00, perfect for home.", got)

	one[0].Reasons = nil
	got = Render(domain.IntentProductSearch, domain.ShoppingContext{}, one, "")
	assert.Equal(t, "I found the Item 0 at $10.00.", got)
}

func TestRenderListTruncates(t *testing.T) {
	ctx := domain.ShoppingContext{Budget: &domain.BudgetRange{Min: 100, Max: math.Inf(1)}}
	got := Render(domain.IntentBudgetFilter, ctx, results(7), "")

	lines := strings.Split(got, "\n")
	assert.Equal(t, "Here are the best options over $100.00:", lines[0])
	assert.Len(t, lines, 7)
	assert.Equal(t, "1. Item 0 - $10.00", lines[1])
	assert.Equal(t, "...and 2 more options available.", lines[6])
}

func TestRenderListUsesReasonOrDescription(t *testing.T) {
	rs := results(2)
	rs[0].Reasons = []string{"great value within your budget"}
	rs[1].Product.Description = strings.Repeat("word ", 30)

	got := Render(domain.IntentGeneralHelp, domain.ShoppingContext{}, rs, "")

	assert.Contains(t, got, "1. Item 0 - $10.00 (great value within your budget)")
	assert.Contains(t, got, "2. Item 1 - $20.00 (word word")
	assert.Contains(t, got, "...)")
}

func TestRenderComparisonNamesCheapest(t *testing.T) {
	rs := results(3)
	rs[0].Product.Price = 300

	got := Render(domain.IntentComparison, domain.ShoppingContext{}, rs, "")
	assert.Contains(t, got, "Here's how these options compare:")
	assert.Contains(t, got, "The Item 1 is the most affordable at $20.00.")
	assert.NotContains(t, got, "more option")
}

func TestRenderOneMore(t *testing.T) {
	got := Render(domain.IntentStyleAdvice, domain.ShoppingContext{}, results(4), "")
	assert.True(t, strings.HasSuffix(got, "...and 1 more option available."))
}
