package importer

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var errEmptyAmount = errors.New("the amount is empty")

// currencySymbols are removed from amounts before parsing.
var currencySymbols = strings.NewReplacer("$", "", "€", "", "£", "", "₹", "", ",", "", " ", "")

// ParseAmount converts an amount cell like "-1,234.56", "(45.00)" or "₹ 300"
// to a decimal. On error, the returned amount is zero.
func ParseAmount(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, errEmptyAmount
	}

	// Accounting notation, "(45.00)" is -45.00
	negative := false
	if strings.HasPrefix(input, "(") && strings.HasSuffix(input, ")") {
		negative = true
		input = input[1 : len(input)-1]
	}

	input = strings.TrimPrefix(currencySymbols.Replace(input), "+")

	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, err
	}

	if negative {
		return amount.Neg(), nil
	}
	return amount, nil
}
