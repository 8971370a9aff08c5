package domain

import (
	"encoding/json"
	"math"
)

// BudgetRange is an inclusive price window. Max may be +Inf.
type BudgetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Unbounded reports whether the range has no upper limit.
func (b BudgetRange) Unbounded() bool {
	return math.IsInf(b.Max, 1)
}

// Contains reports whether price lies within the range.
func (b BudgetRange) Contains(price float64) bool {
	return price >= b.Min && price <= b.Max
}

// ShoppingContext holds the constraints extracted from a free-text query.
// A zero field means unconstrained.
type ShoppingContext struct {
	Budget      *BudgetRange `json:"budget,omitempty"`
	Categories  []string     `json:"categories,omitempty"`
	UseCase     string       `json:"useCase,omitempty"`
	Preferences []string     `json:"preferences,omitempty"`
	BodyType    string       `json:"bodyType,omitempty"`
}

// HasBudget reports whether a budget was extracted.
func (c ShoppingContext) HasBudget() bool {
	return c.Budget != nil
}

// PrimaryCategory returns the first requested category or "".
func (c ShoppingContext) PrimaryCategory() string {
	if len(c.Categories) == 0 {
		return ""
	}
	return c.Categories[0]
}

// WithoutCategories returns a copy of c with the category constraint removed.
func (c ShoppingContext) WithoutCategories() ShoppingContext {
	c.Categories = nil
	return c
}

type budgetRangeJSON struct {
	Min float64  `json:"min"`
	Max *float64 `json:"max"`
}

// MarshalJSON encodes an unbounded max as null.
func (b BudgetRange) MarshalJSON() ([]byte, error) {
	w := budgetRangeJSON{Min: b.Min}
	if !b.Unbounded() {
		limit := b.Max
		w.Max = &limit
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes a null or missing max as unbounded.
func (b *BudgetRange) UnmarshalJSON(data []byte) error {
	var w budgetRangeJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	b.Min = w.Min
	b.Max = math.Inf(1)
	if w.Max != nil {
		b.Max = *w.Max
	}
	return nil
}
