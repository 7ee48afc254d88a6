package model

import "github.com/google/uuid"

// Template is a named snapshot of expenses. The stored expenses are a
// recipe, not live references: instantiating a template always mints new
// identifiers for the copies placed into a profile.
type Template struct {
	Name     string    `json:"name"`
	Expenses []Expense `json:"expenses"`
	ID       uuid.UUID `json:"id"`
}

// NewTemplate creates a template with a fresh identifier. The expenses
// are stored as given, keeping their existing identifiers.
func NewTemplate(name string, expenses []Expense) Template {
	return Template{
		ID:       uuid.New(),
		Name:     name,
		Expenses: expenses,
	}
}

// Total returns the sum of the template's active expense amounts.
func (t Template) Total() float64 {
	var total float64
	for _, e := range t.Expenses {
		if e.Active {
			total += e.Amount
		}
	}
	return total
}

// Instantiate returns copies of the template's expenses with fresh
// identifiers, ready to be placed into a profile.
func (t Template) Instantiate() []Expense {
	expenses := make([]Expense, 0, len(t.Expenses))
	for _, e := range t.Expenses {
		expenses = append(expenses, NewExpense(e.Amount, e.Category, e.Description, e.Date))
	}
	return expenses
}
