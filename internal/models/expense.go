package models

import "github.com/shopspring/decimal"

// Expense is a single spending record. It always belongs to a Category and
// can optionally be booked against a Budget. The API representation nests the
// resolved Category and Budget instead of exposing raw foreign keys.
type Expense struct {
	ID       ID              `json:"id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Category Category        `json:"category"`
	Budget   *Budget         `json:"budget"`

	// Owner is the principal that created the expense, empty when it was
	// created without authentication. Not part of the API representation.
	Owner string `json:"-"`
}

// ExpenseEditable represents all user configurable parameters of an Expense.
// Updates replace all of these fields as a single unit. Amount is a pointer
// so that a missing amount can be told apart from an explicit zero.
type ExpenseEditable struct {
	Name       string           `json:"name" binding:"required" example:"Flight"`   // Name of the expense
	Amount     *decimal.Decimal `json:"amount" binding:"required" example:"250.50"` // Amount, non-negative with at most 2 decimal places
	CategoryID ID               `json:"category_id" binding:"required"`             // ID of an existing category
	BudgetID   ID               `json:"budget_id"`                                  // ID of an existing budget, optional
}
