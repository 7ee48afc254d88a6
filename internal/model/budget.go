package model

import (
	"encoding/json"
	"maps"
	"slices"
)

// Budget is the unified view of one profile plus the shared data. In the
// current layout it exists only as an ephemeral composition handed to
// presentation consumers and is recomputed after every mutation; it is
// also the schema of the legacy single-file budget.json that migration
// reads.
type Budget struct {
	CategoryColors map[string]Color `json:"category_colors"`
	Categories     []string         `json:"categories"`
	Expenses       []Expense        `json:"expenses"`
	Templates      []Template       `json:"templates"`
	Presets        []ExpensePreset  `json:"presets"`
	Income         float64          `json:"income"`
}

// NewBudget returns an empty budget seeded with the default categories.
func NewBudget() Budget {
	return Budget{
		Categories:     defaultCategoryNames(),
		CategoryColors: defaultCategoryColors(),
	}
}

// Compose derives the presentation view from profile and shared data. All
// collections are copied, so the view stays valid as a snapshot even
// while the underlying state keeps mutating; consumers must still not
// cache it across mutations.
func Compose(profile *ProfileData, shared *SharedData) Budget {
	return Budget{
		Income:         profile.Income,
		Expenses:       slices.Clone(profile.Expenses),
		Categories:     slices.Clone(shared.Categories),
		CategoryColors: maps.Clone(shared.CategoryColors),
		Templates:      slices.Clone(shared.Templates),
		Presets:        slices.Clone(shared.Presets),
	}
}

// TotalIncome returns the budget period income.
func (b Budget) TotalIncome() float64 {
	return b.Income
}

// TotalExpenses returns the sum of active expense amounts.
func (b Budget) TotalExpenses() float64 {
	var total float64
	for _, e := range b.Expenses {
		if e.Active {
			total += e.Amount
		}
	}
	return total
}

// RemainingBalance returns income minus active expenses.
func (b Budget) RemainingBalance() float64 {
	return b.Income - b.TotalExpenses()
}

// CategoryColor returns the color for a category, or gray if the category
// has no color entry.
func (b Budget) CategoryColor(name string) Color {
	if color, ok := b.CategoryColors[name]; ok {
		return color
	}
	return ColorGray
}

// UnmarshalJSON implements the json.Unmarshaler interface. Legacy budget
// files that predate categories or colors get the defaults rather than
// empty collections.
func (b *Budget) UnmarshalJSON(data []byte) error {
	type alias Budget
	if err := json.Unmarshal(data, (*alias)(b)); err != nil {
		return err
	}

	if b.Categories == nil {
		b.Categories = defaultCategoryNames()
	}
	if b.CategoryColors == nil {
		b.CategoryColors = defaultCategoryColors()
	}
	return nil
}
