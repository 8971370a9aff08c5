package domain

import "strings"

// Intent is the classified purpose of a free-text query.
type Intent string

const (
	IntentGreeting       Intent = "GREETING"
	IntentStyleAdvice    Intent = "STYLE_ADVICE"
	IntentBudgetFilter   Intent = "BUDGET_FILTER"
	IntentComparison     Intent = "COMPARISON"
	IntentProductSearch  Intent = "PRODUCT_SEARCH"
	IntentRecommendation Intent = "RECOMMENDATION"
	IntentOffTopic       Intent = "OFF_TOPIC"
	IntentGeneralHelp    Intent = "GENERAL_HELP"
)

// NeedsCatalog reports whether replies for the intent reference products.
func (i Intent) NeedsCatalog() bool {
	return i != IntentGreeting && i != IntentOffTopic
}

// Classification is the classifier output.
type Classification struct {
	Intent     Intent          `json:"intent"`
	Context    ShoppingContext `json:"context"`
	Confidence float64         `json:"confidence"`
}

// KnownCategories lists the top-level catalog categories in priority order.
var KnownCategories = []string{"electronics", "clothing", "accessories", "home", "sports", "beauty"}

// ScoredCandidate is a product with its relevance score and the reasons
// collected while scoring it.
type ScoredCandidate struct {
	Product Product  `json:"product"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons,omitempty"`
}

// TopReason returns the first reason or "".
func (c ScoredCandidate) TopReason() string {
	if len(c.Reasons) == 0 {
		return ""
	}
	return c.Reasons[0]
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
