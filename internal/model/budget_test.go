package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetLegacyUnmarshal(t *testing.T) {
	t.Run("missing categories get defaults", func(t *testing.T) {
		raw := `{"income": 1000, "expenses": []}`

		var b Budget
		require.NoError(t, json.Unmarshal([]byte(raw), &b))
		assert.Equal(t, 1000.0, b.Income)
		assert.Len(t, b.Categories, len(DefaultCategories))
		assert.Equal(t, Color{59, 130, 246}, b.CategoryColor("Transportation"))
	})

	t.Run("present categories are kept as-is", func(t *testing.T) {
		raw := `{"income": 500, "expenses": [], "categories": ["Food"], "category_colors": {"Food": [1,2,3]}}`

		var b Budget
		require.NoError(t, json.Unmarshal([]byte(raw), &b))
		assert.Equal(t, []string{"Food"}, b.Categories)
		assert.Equal(t, Color{1, 2, 3}, b.CategoryColor("Food"))
	})
}

func TestCompose(t *testing.T) {
	date := NewDate(2024, time.August, 1)
	profile := ProfileData{
		Income:   2500,
		Expenses: []Expense{NewExpense(100, "Shopping", "shoes", date)},
	}
	shared := NewSharedData()
	shared.AddPreset(NewExpensePreset("Coffee", 4.5, "Food & Groceries", ""))

	view := Compose(&profile, &shared)

	t.Run("view mirrors both sources", func(t *testing.T) {
		assert.Equal(t, 2500.0, view.TotalIncome())
		assert.InDelta(t, 100, view.TotalExpenses(), 1e-9)
		assert.InDelta(t, 2400, view.RemainingBalance(), 1e-9)
		assert.Len(t, view.Presets, 1)
		assert.Equal(t, shared.Categories, view.Categories)
	})

	t.Run("view is a snapshot", func(t *testing.T) {
		profile.AddExpense(NewExpense(50, "Other", "", date))
		shared.AddCategory("Pets", Color{1, 1, 1})

		assert.Len(t, view.Expenses, 1)
		assert.Equal(t, ColorGray, view.CategoryColor("Pets"))
	})

	t.Run("queries work on unbound return values", func(t *testing.T) {
		// Callers chain these off Compose and store loads without binding
		// a variable first, so they must not need an addressable receiver.
		// The snapshot subtest above added a 50 expense to the profile.
		assert.InDelta(t, 2350, Compose(&profile, &shared).RemainingBalance(), 1e-9)
		assert.Equal(t, ColorGray, NewBudget().CategoryColor("Unknown"))
		assert.True(t, NewSharedData().HasCategory("Other"))
		assert.Equal(t, ColorGray, NewSharedData().CategoryColor("Unknown"))
		assert.NotNil(t, NewAppConfig().Profile(MainProfileID))
	})
}
