package model

import "github.com/google/uuid"

// ProfileData holds one profile's income and expense list. It is the only
// part of the data model that is not shared across profiles.
type ProfileData struct {
	Expenses []Expense `json:"expenses"`
	Income   float64   `json:"income"`
}

// NewProfileData returns an empty profile.
func NewProfileData() ProfileData {
	return ProfileData{}
}

// TotalExpenses returns the sum of active expense amounts.
func (p *ProfileData) TotalExpenses() float64 {
	var total float64
	for _, e := range p.Expenses {
		if e.Active {
			total += e.Amount
		}
	}
	return total
}

// RemainingBalance returns income minus active expenses.
func (p *ProfileData) RemainingBalance() float64 {
	return p.Income - p.TotalExpenses()
}

// AddExpense appends an expense to the profile.
func (p *ProfileData) AddExpense(expense Expense) {
	p.Expenses = append(p.Expenses, expense)
}

// RemoveExpense removes the expense with the given identifier. Removal is
// identifier-based so that sorted or filtered views never invalidate it.
// Absent identifiers are a no-op.
func (p *ProfileData) RemoveExpense(id uuid.UUID) {
	kept := p.Expenses[:0]
	for _, e := range p.Expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	p.Expenses = kept
}

// ToggleExpense flips the active flag of the expense with the given
// identifier. Absent identifiers are a no-op.
func (p *ProfileData) ToggleExpense(id uuid.UUID) {
	for i := range p.Expenses {
		if p.Expenses[i].ID == id {
			p.Expenses[i].Active = !p.Expenses[i].Active
			return
		}
	}
}

// Expense returns the expense with the given identifier, or nil.
func (p *ProfileData) Expense(id uuid.UUID) *Expense {
	for i := range p.Expenses {
		if p.Expenses[i].ID == id {
			return &p.Expenses[i]
		}
	}
	return nil
}
