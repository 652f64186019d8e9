package importer

import (
	"strings"

	"github.com/cashflow-insight/backend/pkg/models"
	"github.com/rs/zerolog/log"
)

// Transactions returns one transaction per row of the table. Amounts that
// cannot be parsed are set to zero, the row is kept.
func Transactions(t Table, columns Columns) []models.Transaction {
	// When there are no rows, we want an empty list, not null
	transactions := make([]models.Transaction, 0, len(t.Rows))

	for i := range t.Rows {
		raw := t.Cell(i, columns.Amount)
		amount, err := ParseAmount(raw)
		if err != nil {
			// Line numbers are 1-based and the header is line 1
			log.Debug().Int("line", i+2).Str("amount", raw).Err(err).Msg("amount coerced to zero")
		}

		transactions = append(transactions, models.Transaction{
			Description: strings.TrimSpace(t.Cell(i, columns.Description)),
			Amount:      amount,
		})
	}

	return transactions
}
