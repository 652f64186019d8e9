package analysis

import (
	"github.com/cashflow-insight/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// Totals are the sums over all transactions of one upload.
type Totals struct {
	// Categories maps each category with at least one expense to the
	// absolute sum of its expenses. Income never shows up here.
	Categories map[models.Category]decimal.Decimal

	// NetFlow is the sum of all amounts, income and expenses.
	//
	// The upload is assumed to cover exactly one month. Dates are not
	// read, so a file covering a quarter yields a quarterly net flow
	// that is still projected as if it were monthly.
	NetFlow decimal.Decimal

	// Expenses is the sum of all category totals.
	Expenses decimal.Decimal
}

// Aggregate sums up categorized transactions.
func Aggregate(transactions []models.Transaction) Totals {
	totals := Totals{
		Categories: make(map[models.Category]decimal.Decimal),
		NetFlow:    decimal.Zero,
		Expenses:   decimal.Zero,
	}

	for _, t := range transactions {
		totals.NetFlow = totals.NetFlow.Add(t.Amount)

		if !t.IsExpense() {
			continue
		}

		sum, ok := totals.Categories[t.Category]
		if !ok {
			sum = decimal.Zero
		}
		totals.Categories[t.Category] = sum.Add(t.Amount.Abs())
	}

	for _, sum := range totals.Categories {
		totals.Expenses = totals.Expenses.Add(sum)
	}

	return totals
}
