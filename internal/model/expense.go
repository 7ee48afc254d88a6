// Package model defines the core data types for budgets, profiles, and
// the shared category/template/preset pool.
package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Expense represents a single budget line item.
type Expense struct {
	Category    string    `json:"category"`
	Description string    `json:"description"`
	ID          uuid.UUID `json:"id"`
	Date        Date      `json:"date"`
	Amount      float64   `json:"amount"`
	Active      bool      `json:"active"`
}

// NewExpense creates an expense with a fresh identifier. New expenses are
// always active.
func NewExpense(amount float64, category, description string, date Date) Expense {
	return Expense{
		ID:          uuid.New(),
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
		Active:      true,
	}
}

// UnmarshalJSON implements the json.Unmarshaler interface. Expenses
// written before the active flag existed default to active.
func (e *Expense) UnmarshalJSON(data []byte) error {
	type alias Expense
	aux := struct {
		Active *bool `json:"active"`
		*alias
	}{alias: (*alias)(e)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.Active == nil {
		e.Active = true
	} else {
		e.Active = *aux.Active
	}
	return nil
}
