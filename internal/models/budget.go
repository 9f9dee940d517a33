package models

import "github.com/shopspring/decimal"

// Budget is an amount of money set aside that expenses can optionally be
// booked against.
type Budget struct {
	ID     ID              `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`

	// Owner is the principal that created the budget, empty when it was
	// created without authentication. Not part of the API representation.
	Owner string `json:"-"`
}

// BudgetEditable represents all user configurable parameters of a Budget.
// Amount is a pointer so that a missing amount can be told apart from an
// explicit zero.
type BudgetEditable struct {
	Name   string           `json:"name" binding:"required" example:"Monthly Budget"` // Name of the budget, unique
	Amount *decimal.Decimal `json:"amount" binding:"required" example:"5000.00"`      // Allocated amount, non-negative with at most 2 decimal places
}
