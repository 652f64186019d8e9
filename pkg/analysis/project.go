package analysis

import (
	"github.com/shopspring/decimal"
)

const (
	// ProjectionMonths is the number of months the balance is projected for.
	ProjectionMonths = 12

	SummaryPositive = "Positive Cash Flow"
	SummaryNegative = "Action Required: Negative Cash Flow"
)

// SafetyBufferNoExpenses is reported as the safety buffer when the upload
// contains no expenses at all.
var SafetyBufferNoExpenses = decimal.NewFromInt(12)

// ProjectionPoint is the estimated balance at the end of a future month.
type ProjectionPoint struct {
	Month            int
	EstimatedBalance decimal.Decimal
}

// Project extrapolates the balance for the next ProjectionMonths months,
// assuming the net flow repeats every month.
func Project(savings, netFlow decimal.Decimal) []ProjectionPoint {
	projection := make([]ProjectionPoint, 0, ProjectionMonths)

	for month := 1; month <= ProjectionMonths; month++ {
		projection = append(projection, ProjectionPoint{
			Month:            month,
			EstimatedBalance: savings.Add(netFlow.Mul(decimal.NewFromInt(int64(month)))),
		})
	}

	return projection
}

// SafetyBuffer returns how many months the savings cover the expenses.
//
// Without expenses, the ratio is undefined. In that case,
// SafetyBufferNoExpenses is returned together with false.
func SafetyBuffer(savings, expenses decimal.Decimal) (decimal.Decimal, bool) {
	if !expenses.IsPositive() {
		return SafetyBufferNoExpenses, false
	}

	return savings.Div(expenses), true
}

// Summary returns the label for the net flow. A net flow of exactly
// zero needs action, too.
func Summary(netFlow decimal.Decimal) string {
	if netFlow.IsPositive() {
		return SummaryPositive
	}
	return SummaryNegative
}
