package model

import "github.com/google/uuid"

// ExpensePreset is a reusable expense recipe that can be instantiated on
// demand with today's date.
type ExpensePreset struct {
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	DefaultDay  *int      `json:"default_day,omitempty"`
	ID          uuid.UUID `json:"id"`
	Amount      float64   `json:"amount"`
}

// NewExpensePreset creates a preset with a fresh identifier.
func NewExpensePreset(name string, amount float64, category, description string) ExpensePreset {
	return ExpensePreset{
		ID:          uuid.New(),
		Name:        name,
		Amount:      amount,
		Category:    category,
		Description: description,
	}
}

// WithDay sets the advisory default day of month, clamped to [1, 31].
func (p ExpensePreset) WithDay(day int) ExpensePreset {
	if day < 1 {
		day = 1
	}
	if day > 31 {
		day = 31
	}
	p.DefaultDay = &day
	return p
}

// Instantiate creates a new expense from the preset, dated today.
func (p ExpensePreset) Instantiate() Expense {
	return NewExpense(p.Amount, p.Category, p.Description, Today())
}
