// Package response renders replies from ranked results. It formats only
// data already computed upstream and never looks up products itself.
package response

import (
	"fmt"
	"hash/fnv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
)

const (
	defaultCap     = 3
	maxDescription = 80
)

// DisplayCap is the most items listed for intent.
func DisplayCap(intent domain.Intent) int {
	if b, ok := branches[intent]; ok {
		return b.cap
	}
	return defaultCap
}

// Render produces the reply text for intent. Greeting and off-topic replies
// ignore results and are chosen deterministically from query.
func Render(intent domain.Intent, ctx domain.ShoppingContext, results []domain.ScoredCandidate, query string) string {
	switch intent {
	case domain.IntentGreeting:
		return pick(greetings, query)
	case domain.IntentOffTopic:
		return pick(offTopicReplies, query)
	}

	b, ok := branches[intent]
	if !ok {
		b = branches[domain.IntentGeneralHelp]
	}

	switch len(results) {
	case 0:
		return b.empty(ctx)
	case 1:
		return single(b, results[0])
	}

	var sb strings.Builder
	sb.WriteString(b.lead(ctx))

	shown := results
	if len(shown) > b.cap {
		shown = shown[:b.cap]
	}
	for i, c := range shown {
		sb.WriteString(fmt.Sprintf("\n%d. %s - %s", i+1, c.Product.Title, Price(c.Product.Price)))
		if note := detail(c); note != "" {
			sb.WriteString(" (" + note + ")")
		}
	}

	if intent == domain.IntentComparison {
		cheapest := shown[0]
		for _, c := range shown[1:] {
			if c.Product.Price < cheapest.Product.Price {
				cheapest = c
			}
		}
		sb.WriteString(fmt.Sprintf("\nThe %s is the most affordable at %s.", cheapest.Product.Title, Price(cheapest.Product.Price)))
	}

	if more := len(results) - len(shown); more > 0 {
		sb.WriteString(fmt.Sprintf("\n...and %d more %s available.", more, plural(more, "option", "options")))
	}

	return sb.String()
}

// Price formats an amount with two decimals.
func Price(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

func single(b branch, c domain.ScoredCandidate) string {
	line := fmt.Sprintf(b.single, c.Product.Title, Price(c.Product.Price))
	if reason := c.TopReason(); reason != "" {
		line += ", " + reason
	}
	return line + "."
}

// detail prefers the top scoring reason and falls back to a shortened
// product description.
func detail(c domain.ScoredCandidate) string {
	if reason := c.TopReason(); reason != "" {
		return reason
	}
	return shorten(strings.TrimSpace(c.Product.Description), maxDescription)
}

func shorten(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)[:limit]
	cut := string(runes)
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, ",.;:") + "..."
}

func scope(ctx domain.ShoppingContext) string {
	var sb strings.Builder
	if c := ctx.PrimaryCategory(); c != "" {
		sb.WriteString(" in " + c)
	}
	sb.WriteString(budgetPhrase(ctx))
	return sb.String()
}

func budgetPhrase(ctx domain.ShoppingContext) string {
	b := ctx.Budget
	switch {
	case b == nil:
		return ""
	case b.Unbounded():
		return " over " + Price(b.Min)
	case b.Min <= 0:
		return " under " + Price(b.Max)
	default:
		return " between " + Price(b.Min) + " and " + Price(b.Max)
	}
}

func pick(lines []string, query string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(query))
	return lines[h.Sum32()%uint32(len(lines))]
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
