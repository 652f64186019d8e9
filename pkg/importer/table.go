package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cashflow-insight/backend/pkg/models"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Table is an uploaded CSV file held in memory.
type Table struct {
	Header []string
	Rows   [][]string
}

// Cell returns the value at the given row and column. Cells outside of
// a short row are empty.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// Parse reads a CSV file with a header row into a Table.
//
// A UTF-8 byte order mark is dropped and input that is not valid UTF-8
// is read as ISO-8859-1, which is what most banking exports use.
func Parse(f io.Reader) (Table, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return Table{}, err
	}

	reader := csv.NewReader(decode(data))

	// Rows may be shorter or longer than the header
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return Table{}, fmt.Errorf("%w: the file is empty", models.ErrParse)
	}
	if err != nil {
		return csvReadError(1, fmt.Errorf("could not read the header: %w", err))
	}

	for i, name := range header {
		header[i] = strings.TrimSpace(name)
	}

	table := Table{Header: header}
	line := 1
	for {
		line++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return csvReadError(line, fmt.Errorf("could not read line in CSV: %w", err))
		}

		// Pad short rows so that every resolved column exists
		for len(record) < len(header) {
			record = append(record, "")
		}

		table.Rows = append(table.Rows, record)
	}

	return table, nil
}

// decode returns a reader that yields UTF-8 without a byte order mark.
func decode(data []byte) io.Reader {
	fallback := transform.Transformer(transform.Nop)
	if !utf8.Valid(data) {
		fallback = charmap.ISO8859_1.NewDecoder()
	}

	return transform.NewReader(bytes.NewReader(data), unicode.BOMOverride(fallback))
}

// csvReadError returns an error that includes the line of the input the
// error occurred in. The line reported by the CSV reader takes precedence
// over the record count since quoted fields can span multiple lines.
func csvReadError(line int, err error) (Table, error) {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		line = parseErr.Line
	}

	return Table{}, fmt.Errorf("%w: error in line %d of the CSV: %w", models.ErrParse, line, err)
}
