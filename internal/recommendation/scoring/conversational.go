package scoring

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
	"github.com/tair/shopping-advisor/internal/recommendation/lexicon"
)

const (
	baseScore = 10

	budgetCap     = 40
	budgetTarget  = 0.7
	valueFraction = 0.8

	categoryScore = 30

	keywordPoints = 5
	keywordCap    = 30
	minTokenLen   = 3

	useCasePoints = 7
	useCaseCap    = 20

	preferencePoints = 7
	preferenceCap    = 20

	reasonThreshold = 10

	bodyTypeBase      = 5
	bodyTypePositive  = 5
	bodyTypeNegative  = 3
	bodyTypeCap       = 15
	bodyTypeThreshold = 5
)

// Conversational ranks products against a free-text query.
type Conversational struct {
	factors []Factor
}

// NewConversational builds the factor set for ctx and the raw query text.
func NewConversational(ctx domain.ShoppingContext, query string) *Conversational {
	return &Conversational{factors: []Factor{
		Base(),
		BudgetProximity(ctx.Budget),
		CategoryMatch(ctx.Categories),
		KeywordRelevance(query),
		UseCaseMatch(ctx.UseCase),
		PreferenceMatch(ctx.Preferences),
		BodyTypeMatch(ctx.BodyType),
	}}
}

func (s *Conversational) Name() string { return "conversational" }

func (s *Conversational) Score(p domain.Product) domain.ScoredCandidate {
	return fold(p, s.factors)
}

// Base rewards every product that survived filtering.
func Base() Factor {
	return func(domain.Product) Contribution {
		return Contribution{Score: baseScore}
	}
}

// BudgetProximity favours prices near 70% of the way through the budget.
// For an open-ended budget the target is the floor.
func BudgetProximity(budget *domain.BudgetRange) Factor {
	return func(p domain.Product) Contribution {
		if budget == nil {
			return Contribution{}
		}

		target := budget.Min
		if !budget.Unbounded() {
			target = budget.Min + budgetTarget*(budget.Max-budget.Min)
		}

		c := Contribution{Score: proximity(p.Price, target, budgetCap)}
		if !budget.Unbounded() && p.Price <= valueFraction*budget.Max {
			c.Reason = "great value within your budget"
		}
		return c
	}
}

// CategoryMatch rewards products in one of the requested categories.
func CategoryMatch(categories []string) Factor {
	return func(p domain.Product) Contribution {
		for _, c := range categories {
			if strings.EqualFold(p.Category, c) {
				return Contribution{Score: categoryScore, Reason: "perfect for " + strings.ToLower(c)}
			}
		}
		return Contribution{}
	}
}

// KeywordRelevance rewards query words found in the title or description.
// A word repeated in the query counts once per occurrence.
func KeywordRelevance(query string) Factor {
	var tokens []string
	for _, tok := range lexicon.Tokens(lexicon.Normalize(query)) {
		if utf8.RuneCountInString(tok) >= minTokenLen {
			tokens = append(tokens, tok)
		}
	}

	return func(p domain.Product) Contribution {
		if len(tokens) == 0 {
			return Contribution{}
		}
		text := p.SearchText()
		hits := 0
		for _, tok := range tokens {
			if strings.Contains(text, tok) {
				hits++
			}
		}
		return Contribution{Score: math.Min(keywordCap, float64(keywordPoints*hits))}
	}
}

// UseCaseMatch rewards products whose text carries the use case's keywords.
func UseCaseMatch(useCase string) Factor {
	entry, ok := lexicon.UseCases.Entry(useCase)

	return func(p domain.Product) Contribution {
		if !ok {
			return Contribution{}
		}
		hits := lexicon.CountWords(productText(p), entry.Keywords)
		c := Contribution{Score: math.Min(useCaseCap, float64(useCasePoints*hits))}
		if c.Score > reasonThreshold {
			c.Reason = "ideal for " + useCase + " use"
		}
		return c
	}
}

// PreferenceMatch rewards products matching the extracted preference
// keywords. A keyword also matches the synonyms listed with it.
func PreferenceMatch(preferences []string) Factor {
	type preference struct {
		word  string
		forms []string
	}
	var prefs []preference
	for _, pref := range normalizeAll(preferences) {
		forms := []string{pref}
		if e, ok := lexicon.Preferences.EntryFor(pref); ok {
			forms = e.Keywords
		}
		prefs = append(prefs, preference{word: pref, forms: forms})
	}

	return func(p domain.Product) Contribution {
		if len(prefs) == 0 {
			return Contribution{}
		}
		text := productText(p)
		hits := 0
		first := ""
		for _, pref := range prefs {
			if lexicon.CountWords(text, pref.forms) == 0 {
				continue
			}
			if first == "" {
				first = pref.word
			}
			hits++
		}
		c := Contribution{Score: math.Min(preferenceCap, float64(preferencePoints*hits))}
		if c.Score > reasonThreshold {
			c.Reason = "matches your preference for " + first
		}
		return c
	}
}

// BodyTypeMatch adjusts clothing relevance for the stated body type.
func BodyTypeMatch(bodyType string) Factor {
	def, ok := lexicon.LookupBodyType(bodyType)
	positive := normalizeAll(def.Positive)
	negative := normalizeAll(def.Negative)

	return func(p domain.Product) Contribution {
		if !ok || !strings.EqualFold(p.Category, "clothing") {
			return Contribution{}
		}
		text := productText(p)
		score := float64(bodyTypeBase +
			bodyTypePositive*lexicon.CountWords(text, positive) -
			bodyTypeNegative*lexicon.CountWords(text, negative))
		score = math.Max(0, math.Min(bodyTypeCap, score))

		c := Contribution{Score: score}
		if score > bodyTypeThreshold {
			c.Reason = def.Reason
		}
		return c
	}
}

func normalizeAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if n := lexicon.Normalize(w); n != "" {
			out = append(out, n)
		}
	}
	return out
}
