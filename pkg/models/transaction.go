package models

import "github.com/shopspring/decimal"

// Transaction is a single row of an uploaded statement after the
// description and amount columns have been resolved.
type Transaction struct {
	Description string          `json:"description" example:"Swiggy order #1234"` // Free text description of the transaction
	Amount      decimal.Decimal `json:"amount" example:"-45.00"`                  // Signed amount. Negative amounts are expenses, positive amounts are income
	Category    Category        `json:"category" example:"Food"`                  // Category assigned by keyword matching
}

// IsExpense reports whether the transaction moves money out.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}
