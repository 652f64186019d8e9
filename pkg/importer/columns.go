package importer

import (
	"fmt"
	"strings"

	"github.com/cashflow-insight/backend/pkg/models"
)

// Positions used when no column has a known name.
const (
	fallbackDescription = 1
	fallbackAmount      = 2
)

var (
	descriptionNames = []string{"description", "details"}
	amountNames      = []string{"amount", "price"}
)

// Columns holds the indexes of the columns that the analysis reads.
type Columns struct {
	Description int
	Amount      int
}

// ResolveColumns picks the description and amount columns from the header.
//
// Known names are matched case-insensitively after trimming whitespace. If
// none of them is present, the second column is used for the description
// and the third column for the amount.
func ResolveColumns(header []string) (Columns, error) {
	lookup := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))

		// With duplicate names, the leftmost column wins
		if _, ok := lookup[key]; !ok {
			lookup[key] = i
		}
	}

	description, err := resolve(lookup, descriptionNames, fallbackDescription, len(header))
	if err != nil {
		return Columns{}, fmt.Errorf("%w: no description column: %w", models.ErrSchema, err)
	}

	amount, err := resolve(lookup, amountNames, fallbackAmount, len(header))
	if err != nil {
		return Columns{}, fmt.Errorf("%w: no amount column: %w", models.ErrSchema, err)
	}

	return Columns{
		Description: description,
		Amount:      amount,
	}, nil
}

func resolve(lookup map[string]int, names []string, fallback, width int) (int, error) {
	for _, name := range names {
		if i, ok := lookup[name]; ok {
			return i, nil
		}
	}

	if fallback >= width {
		return 0, fmt.Errorf("none of the columns is named %s and the file only has %d columns", strings.Join(names, " or "), width)
	}

	return fallback, nil
}
