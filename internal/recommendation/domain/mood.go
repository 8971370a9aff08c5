package domain

// BudgetStrategy is the fraction of a budget treated as the ideal price.
type BudgetStrategy string

const (
	BudgetConservative BudgetStrategy = "conservative"
	BudgetModerate     BudgetStrategy = "moderate"
	BudgetPremium      BudgetStrategy = "premium"
)

// Fraction returns the target fraction for the strategy. Unknown values
// resolve to the moderate fraction.
func (s BudgetStrategy) Fraction() float64 {
	switch s {
	case BudgetConservative:
		return 0.6
	case BudgetPremium:
		return 0.9
	default:
		return 0.75
	}
}

// MoodProfile maps a (mood, occasion) pair to scoring parameters.
type MoodProfile struct {
	Mood                string         `json:"mood" yaml:"mood"`
	Occasion            string         `json:"occasion" yaml:"occasion"`
	IntentTags          []string       `json:"intentTags" yaml:"intent_tags"`
	AvoidTags           []string       `json:"avoidTags,omitempty" yaml:"avoid_tags"`
	Keywords            []string       `json:"keywords,omitempty" yaml:"keywords"`
	PreferredCategories []string       `json:"preferredCategories" yaml:"preferred_categories"`
	BudgetStrategy      BudgetStrategy `json:"budgetStrategy" yaml:"budget_strategy"`
	ExplanationTemplate string         `json:"explanationTemplate" yaml:"explanation_template"`
}

// CategoryIndex returns the priority position of category within the
// preferred categories, or -1.
func (p MoodProfile) CategoryIndex(category string) int {
	for i, c := range p.PreferredCategories {
		if equalFold(c, category) {
			return i
		}
	}
	return -1
}

// Avoids reports whether the product carries any avoided tag.
func (p MoodProfile) Avoids(product Product) bool {
	for _, t := range p.AvoidTags {
		if product.HasTag(t) {
			return true
		}
	}
	return false
}
