package scoring

import (
	"math"
	"strings"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
	"github.com/tair/shopping-advisor/internal/recommendation/lexicon"
)

const (
	moodPriceCap      = 40
	moodKeywordPoints = 10
	moodKeywordCap    = 30
	priorityTop       = 30
	priorityStep      = 5

	fallbackTarget = 0.7
)

// Mood ranks products against a resolved mood profile and a budget.
// Every candidate carries the profile's explanation as its only reason.
type Mood struct {
	profile domain.MoodProfile
	// restrictKeywords holds only the profile's explicit keywords.
	restrictKeywords []string
	factors          []Factor
}

// NewMood builds the factor set for profile and budget.
func NewMood(profile domain.MoodProfile, budget float64) *Mood {
	restrictKeywords := normalizeAll(profile.Keywords)
	scoreKeywords := restrictKeywords
	if len(scoreKeywords) == 0 {
		scoreKeywords = normalizeAll(profile.IntentTags)
	}

	return &Mood{
		profile:          profile,
		restrictKeywords: restrictKeywords,
		factors: []Factor{
			PriceTarget(budget * profile.BudgetStrategy.Fraction()),
			KeywordHits(scoreKeywords),
			CategoryPriority(profile.PreferredCategories),
		},
	}
}

func (s *Mood) Name() string { return "mood" }

func (s *Mood) Score(p domain.Product) domain.ScoredCandidate {
	c := fold(p, s.factors)
	c.Reasons = []string{s.profile.ExplanationTemplate}
	return c
}

// Restrict keeps products in a preferred category that match at least one
// profile keyword (when the profile has keywords) and carry no avoided tag.
func (s *Mood) Restrict(products []domain.Product) []domain.Product {
	var out []domain.Product
	for _, p := range products {
		if s.profile.CategoryIndex(p.Category) < 0 {
			continue
		}
		if len(s.restrictKeywords) > 0 && !matchesAny(p, s.restrictKeywords) {
			continue
		}
		if s.profile.Avoids(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// PriceTarget scores closeness to target, capped at 40.
func PriceTarget(target float64) Factor {
	return func(p domain.Product) Contribution {
		return Contribution{Score: proximity(p.Price, target, moodPriceCap)}
	}
}

// KeywordHits awards 10 per keyword found in the product, capped at 30.
func KeywordHits(keywords []string) Factor {
	return func(p domain.Product) Contribution {
		if len(keywords) == 0 {
			return Contribution{}
		}
		hits := 0
		text := productText(p)
		for _, kw := range keywords {
			if lexicon.ContainsWord(text, kw) {
				hits++
			}
		}
		return Contribution{Score: math.Min(moodKeywordCap, float64(moodKeywordPoints*hits))}
	}
}

// CategoryPriority favours earlier preferred categories.
func CategoryPriority(preferred []string) Factor {
	profile := domain.MoodProfile{PreferredCategories: preferred}
	return func(p domain.Product) Contribution {
		idx := profile.CategoryIndex(p.Category)
		if idx < 0 {
			return Contribution{}
		}
		return Contribution{Score: math.Max(0, float64(priorityTop-priorityStep*idx))}
	}
}

// Fallback orders products by closeness to 70% of the budget. It is used
// when a profile matches nothing in the catalog.
type Fallback struct {
	target float64
	reason string
}

// NewFallback returns the proximity-only strategy for budget.
func NewFallback(budget float64, occasion string) *Fallback {
	return &Fallback{
		target: fallbackTarget * budget,
		reason: FallbackReason(occasion),
	}
}

func (s *Fallback) Name() string { return "fallback" }

// Score is the negated distance to the target so closer products rank first.
func (s *Fallback) Score(p domain.Product) domain.ScoredCandidate {
	return domain.ScoredCandidate{
		Product: p,
		Score:   -math.Abs(p.Price - s.target),
		Reasons: []string{s.reason},
	}
}

// FallbackReason is the generic explanation used by the fallback strategy.
func FallbackReason(occasion string) string {
	if occasion == "" {
		return "A well-priced pick that fits your budget."
	}
	return "A well-priced pick that fits your budget and works well for " + occasion + "."
}

// matchesAny reports whether any keyword is a substring of the normalized
// title and description.
func matchesAny(p domain.Product, keywords []string) bool {
	text := lexicon.Normalize(p.Title + " " + p.Description)
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
