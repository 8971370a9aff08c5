package intent

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tair/shopping-advisor/internal/recommendation/domain"
)

// amount matches an optional currency marker, a number with optional
// thousands separators and decimals, and an optional "k" multiplier.
const amount = `(?:[$€£]\s?)?(\d[\d,]*(?:\.\d+)?)(k)?\b`

type budgetPattern struct {
	pattern *regexp.Regexp
	build   func(values []float64) domain.BudgetRange
}

// Tried in order; the first match wins.
var budgetPatterns = []budgetPattern{
	{
		regexp.MustCompile(`\b(?:under|below|up to|less than|within|no more than|max|maximum)\s+` + amount),
		func(v []float64) domain.BudgetRange { return domain.BudgetRange{Min: 0, Max: v[0]} },
	},
	{
		regexp.MustCompile(`\b(?:around|about|approximately|roughly)\s+` + amount),
		func(v []float64) domain.BudgetRange { return domain.BudgetRange{Min: 0.8 * v[0], Max: 1.2 * v[0]} },
	},
	{
		regexp.MustCompile(`\b(?:between|from)\s+` + amount + `\s+(?:and|to)\s+` + amount),
		func(v []float64) domain.BudgetRange {
			lo, hi := v[0], v[1]
			if lo > hi {
				lo, hi = hi, lo
			}
			return domain.BudgetRange{Min: lo, Max: hi}
		},
	},
	{
		regexp.MustCompile(`\b(?:over|above|more than|at least)\s+` + amount),
		func(v []float64) domain.BudgetRange { return domain.BudgetRange{Min: v[0], Max: math.Inf(1)} },
	},
	{
		regexp.MustCompile(`\bbudget (?:of |is |at )?` + amount),
		func(v []float64) domain.BudgetRange { return domain.BudgetRange{Min: 0, Max: v[0]} },
	},
}

// ExtractBudget returns the budget range stated in normalized text, or nil.
func ExtractBudget(text string) *domain.BudgetRange {
	for _, bp := range budgetPatterns {
		m := bp.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		values := make([]float64, 0, 2)
		for i := 1; i+1 < len(m); i += 2 {
			v, ok := parseAmount(m[i], m[i+1])
			if !ok {
				return nil
			}
			values = append(values, v)
		}

		r := bp.build(values)
		return &r
	}
	return nil
}

func parseAmount(digits, multiplier string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(digits, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	if multiplier == "k" {
		v *= 1000
	}
	return v, true
}
