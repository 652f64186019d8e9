// Package analysis turns an uploaded statement into cash flow figures.
package analysis

import (
	"io"

	"github.com/cashflow-insight/backend/pkg/importer"
	"github.com/cashflow-insight/backend/pkg/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Result is the outcome of analyzing one upload.
type Result struct {
	BurnRate              decimal.Decimal // Net flow of the upload, rounded to 2 places
	Projection            []ProjectionPoint
	Categories            map[models.Category]decimal.Decimal
	SafetyBuffer          decimal.Decimal // Months of runway, rounded to 1 place
	SafetyBufferUndefined bool            // Set when there were no expenses and SafetyBuffer is SafetyBufferNoExpenses
	AvgMonthlyExpense     decimal.Decimal // Total expenses, rounded to 2 places
	Summary               string
	TransactionCount      int
}

// Analyze parses a CSV file and computes the Result for it.
//
// Errors wrap models.ErrParse when the file is not CSV and
// models.ErrSchema when the columns cannot be located.
func Analyze(f io.Reader, savings decimal.Decimal) (Result, error) {
	table, err := importer.Parse(f)
	if err != nil {
		return Result{}, err
	}

	columns, err := importer.ResolveColumns(table.Header)
	if err != nil {
		return Result{}, err
	}

	log.Debug().
		Int("rows", len(table.Rows)).
		Str("description", table.Header[columns.Description]).
		Str("amount", table.Header[columns.Amount]).
		Msg("columns resolved")

	return Compute(importer.Transactions(table, columns), savings), nil
}

// Compute categorizes the transactions and computes the Result.
func Compute(transactions []models.Transaction, savings decimal.Decimal) Result {
	CategorizeAll(transactions)
	totals := Aggregate(transactions)

	buffer, defined := SafetyBuffer(savings, totals.Expenses)

	log.Debug().
		Int("transactions", len(transactions)).
		Str("netFlow", totals.NetFlow.String()).
		Str("expenses", totals.Expenses.String()).
		Msg("analysis complete")

	return Result{
		BurnRate:              totals.NetFlow.Round(2),
		Projection:            Project(savings, totals.NetFlow),
		Categories:            totals.Categories,
		SafetyBuffer:          buffer.Round(1),
		SafetyBufferUndefined: !defined,
		AvgMonthlyExpense:     totals.Expenses.Round(2),
		Summary:               Summary(totals.NetFlow),
		TransactionCount:      len(transactions),
	}
}
