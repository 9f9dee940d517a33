package models

import "github.com/shopspring/decimal"

// Income is a single earning record.
type Income struct {
	ID     ID              `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// IncomeEditable represents all user configurable parameters of an Income.
// Amount is a pointer so that a missing amount can be told apart from an
// explicit zero.
type IncomeEditable struct {
	Name   string           `json:"name" binding:"required" example:"Salary"`    // Name of the income
	Amount *decimal.Decimal `json:"amount" binding:"required" example:"3200.00"` // Amount, non-negative with at most 2 decimal places
}
