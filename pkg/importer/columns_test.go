package importer_test

import (
	"testing"

	"github.com/cashflow-insight/backend/pkg/importer"
	"github.com/cashflow-insight/backend/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestResolveColumns(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		expected importer.Columns
	}{
		{"Named columns", []string{"Date", "Description", "Amount"}, importer.Columns{Description: 1, Amount: 2}},
		{"Named columns in other positions", []string{"Amount", "Date", "Description"}, importer.Columns{Description: 2, Amount: 0}},
		{"Alternative names", []string{"Price", "Details", "Date"}, importer.Columns{Description: 1, Amount: 0}},
		{"Description wins over details", []string{"Details", "Description", "Amount"}, importer.Columns{Description: 1, Amount: 2}},
		{"Amount wins over price", []string{"Price", "Description", "Amount"}, importer.Columns{Description: 1, Amount: 2}},
		{"Case and whitespace", []string{" DATE ", "  description", "AMOUNT  "}, importer.Columns{Description: 1, Amount: 2}},
		{"Positional fallback", []string{"Booked", "Memo", "Value", "Balance"}, importer.Columns{Description: 1, Amount: 2}},
		{"Only amount is named", []string{"Amount", "Memo", "Value"}, importer.Columns{Description: 1, Amount: 0}},
		{"Two columns, both named", []string{"Description", "Amount"}, importer.Columns{Description: 0, Amount: 1}},
		{"Duplicate names", []string{"Amount", "Description", "amount"}, importer.Columns{Description: 1, Amount: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			columns, err := importer.ResolveColumns(tt.header)
			assert.Nil(t, err)
			assert.Equal(t, tt.expected, columns)
		})
	}
}

func TestResolveColumnsErrors(t *testing.T) {
	tests := []struct {
		name    string
		header  []string
		message string
	}{
		{"Single column", []string{"Everything"}, "no description column"},
		{"Two unnamed columns", []string{"Date", "Memo"}, "no amount column"},
		{"Two columns, description named", []string{"Description", "Value"}, "no amount column"},
		{"Empty header", []string{}, "no description column"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := importer.ResolveColumns(tt.header)
			if assert.NotNil(t, err) {
				assert.ErrorIs(t, err, models.ErrSchema)
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}
