// Package models holds the backend-neutral entity contract shared by the
// storage adapters and the route layer.
package models

import "github.com/shopspring/decimal"

func init() {
	// Amounts render as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}
