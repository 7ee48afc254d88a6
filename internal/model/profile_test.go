package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testProfile() ProfileData {
	date := NewDate(2024, time.May, 1)
	return ProfileData{
		Income: 3000,
		Expenses: []Expense{
			NewExpense(1200, "Housing & Utilities", "rent", date),
			NewExpense(350.25, "Food & Groceries", "groceries", date),
			NewExpense(60, "Entertainment", "concert", date),
		},
	}
}

func TestProfileDataTotals(t *testing.T) {
	t.Run("total is the sum of active expenses", func(t *testing.T) {
		p := testProfile()
		assert.InDelta(t, 1610.25, p.TotalExpenses(), 1e-9)
		assert.InDelta(t, 1389.75, p.RemainingBalance(), 1e-9)
	})

	t.Run("toggling moves the total by exactly that amount", func(t *testing.T) {
		p := testProfile()
		before := p.TotalExpenses()

		p.ToggleExpense(p.Expenses[1].ID)
		assert.InDelta(t, before-350.25, p.TotalExpenses(), 1e-9)
		assert.False(t, p.Expenses[1].Active)
		assert.True(t, p.Expenses[0].Active)
		assert.True(t, p.Expenses[2].Active)

		p.ToggleExpense(p.Expenses[1].ID)
		assert.InDelta(t, before, p.TotalExpenses(), 1e-9)
	})

	t.Run("toggling an unknown identifier is a no-op", func(t *testing.T) {
		p := testProfile()
		before := p.TotalExpenses()
		p.ToggleExpense(uuid.New())
		assert.InDelta(t, before, p.TotalExpenses(), 1e-9)
	})
}

func TestProfileDataRemoveExpense(t *testing.T) {
	t.Run("removes by identifier", func(t *testing.T) {
		p := testProfile()
		target := p.Expenses[0].ID

		p.RemoveExpense(target)
		assert.Len(t, p.Expenses, 2)
		assert.Nil(t, p.Expense(target))
	})

	t.Run("unknown identifier is a no-op", func(t *testing.T) {
		p := testProfile()
		p.RemoveExpense(uuid.New())
		assert.Len(t, p.Expenses, 3)
	})
}
