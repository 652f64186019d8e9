package analysis

// Report is the JSON representation of a Result.
type Report struct {
	BurnRate              float64            `json:"burn_rate" example:"3755"`                     // Net cash flow of the uploaded period
	Projection            []ReportPoint      `json:"projection"`                                   // Estimated balance for each of the next 12 months
	Categories            map[string]float64 `json:"categories"`                                   // Total expenses per category. Categories without expenses are omitted
	SafetyBuffer          float64            `json:"safety_buffer" example:"0.8"`                  // Months the current savings cover the expenses
	SafetyBufferUndefined bool               `json:"safety_buffer_undefined" example:"false"`      // True if there were no expenses. safety_buffer is 12 in that case
	AvgMonthlyExpense     float64            `json:"avg_monthly_expense" example:"1245"`           // Sum of all expenses
	Summary               string             `json:"summary" example:"Positive Cash Flow"`         // Cash flow label
	TransactionCount      int                `json:"transaction_count" example:"3"`                // Number of rows analyzed
}

type ReportPoint struct {
	Month            int     `json:"month" example:"1"`                // Month, 1 is the next month
	EstimatedBalance float64 `json:"estimated_balance" example:"4755"` // Estimated balance at the end of the month
}

// Report converts the result to its JSON representation.
func (r Result) Report() Report {
	projection := make([]ReportPoint, 0, len(r.Projection))
	for _, p := range r.Projection {
		projection = append(projection, ReportPoint{
			Month:            p.Month,
			EstimatedBalance: p.EstimatedBalance.InexactFloat64(),
		})
	}

	categories := make(map[string]float64, len(r.Categories))
	for category, sum := range r.Categories {
		categories[category.String()] = sum.InexactFloat64()
	}

	return Report{
		BurnRate:              r.BurnRate.InexactFloat64(),
		Projection:            projection,
		Categories:            categories,
		SafetyBuffer:          r.SafetyBuffer.InexactFloat64(),
		SafetyBufferUndefined: r.SafetyBufferUndefined,
		AvgMonthlyExpense:     r.AvgMonthlyExpense.InexactFloat64(),
		Summary:               r.Summary,
		TransactionCount:      r.TransactionCount,
	}
}
