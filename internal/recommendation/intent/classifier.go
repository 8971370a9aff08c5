// Package intent classifies free-text shopping queries and extracts the
// constraints they state.
package intent

import (
	"regexp"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
	"github.com/tair/shopping-advisor/internal/recommendation/lexicon"
)

// signals is what every cascade predicate sees.
type signals struct {
	text string
	ctx  domain.ShoppingContext
}

type rule struct {
	intent     domain.Intent
	confidence float64
	matches    func(s signals) bool
}

var (
	greetingPattern = regexp.MustCompile(`^(?:hi|hello|hey|hiya|howdy|greetings|yo|good morning|good afternoon|good evening)(?: |$)`)

	stylePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bwhat (?:should|can|do) i wear\b`),
		regexp.MustCompile(`\bwhat to wear\b`),
		regexp.MustCompile(`\b(?:outfit|style|fashion) (?:ideas?|advice|tips?|help)\b`),
		regexp.MustCompile(`\bhow (?:do|should|can) i style\b`),
		regexp.MustCompile(`\b(?:goes|go|match|matches) with my\b`),
		regexp.MustCompile(`\bbody (?:type|shape)\b`),
		regexp.MustCompile(`\bflatter(?:ing)?\b`),
		regexp.MustCompile(`\bdress (?:up )?for (?:a|an|the|my)\b`),
	}

	budgetIntentPattern = regexp.MustCompile(`\bbest\b.*\b(?:under|below|within)\b|\bbudget\b`)

	comparisonPattern = regexp.MustCompile(`\bcompare\b|\bcomparison\b|\bversus\b|\bvs\b|\bdifference between\b|\bbetter than\b`)

	searchPattern = regexp.MustCompile(`\bshow me\b|\bfind\b|\blooking for\b|\bsearch(?:ing)? for\b|\bneed an?\b|\bwant to buy\b|\bi want an?\b|\bdo you (?:have|sell)\b|\bwhere can i (?:get|buy)\b|\bshopping for\b`)

	recommendationPattern = regexp.MustCompile(`\bwhat should i\b|\brecommend|\bsuggest|\bhelp me (?:choose|pick|decide)\b|\bwhich (?:one )?is (?:the )?best\b|\bwhat(?: is| s) the best\b`)
)

// cascade is evaluated top to bottom; the first matching rule wins.
var cascade = []rule{
	{domain.IntentGreeting, 0.95, func(s signals) bool {
		return greetingPattern.MatchString(s.text)
	}},
	{domain.IntentStyleAdvice, 0.9, func(s signals) bool {
		if s.ctx.BodyType != "" && contains(s.ctx.Categories, "clothing") {
			return true
		}
		return matchAny(stylePatterns, s.text)
	}},
	{domain.IntentBudgetFilter, 0.9, func(s signals) bool {
		return s.ctx.Budget != nil && budgetIntentPattern.MatchString(s.text)
	}},
	{domain.IntentComparison, 0.85, func(s signals) bool {
		return comparisonPattern.MatchString(s.text)
	}},
	{domain.IntentProductSearch, 0.8, func(s signals) bool {
		return searchPattern.MatchString(s.text)
	}},
	{domain.IntentRecommendation, 0.85, func(s signals) bool {
		return recommendationPattern.MatchString(s.text)
	}},
	{domain.IntentOffTopic, 0.7, func(s signals) bool {
		return lexicon.OffTopic.Any(s.text) && !lexicon.Shopping.Any(s.text)
	}},
}

const defaultConfidence = 0.5

// Classifier maps text to an intent and shopping context. It holds no
// mutable state and is safe for concurrent use.
type Classifier struct {
	rules []rule
}

// NewClassifier returns a classifier using the built-in cascade.
func NewClassifier() *Classifier {
	return &Classifier{rules: cascade}
}

// Classify never fails; empty input yields GENERAL_HELP with an empty context.
func (c *Classifier) Classify(text string) domain.Classification {
	normalized := lexicon.Normalize(text)
	ctx := ExtractContext(normalized)

	s := signals{text: normalized, ctx: ctx}
	for _, r := range c.rules {
		if r.matches(s) {
			return domain.Classification{Intent: r.intent, Context: ctx, Confidence: r.confidence}
		}
	}

	return domain.Classification{Intent: domain.IntentGeneralHelp, Context: ctx, Confidence: defaultConfidence}
}

// ExtractContext runs every extractor over normalized text and merges the results.
func ExtractContext(text string) domain.ShoppingContext {
	ctx := domain.ShoppingContext{
		Budget:      ExtractBudget(text),
		Categories:  lexicon.Categories.LabelsByPosition(text),
		Preferences: lexicon.Preferences.Keywords(text),
	}
	if useCase, ok := lexicon.UseCases.First(text); ok {
		ctx.UseCase = useCase
	}
	if bodyType, ok := lexicon.BodyTypeTable.First(text); ok {
		ctx.BodyType = bodyType
	}
	return ctx
}

func matchAny(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
