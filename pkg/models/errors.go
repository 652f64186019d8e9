package models

import (
	"errors"
)

var (
	ErrGeneral = errors.New("an error occurred on the server during your request")

	// ErrParse is returned when the uploaded bytes are not readable as CSV.
	ErrParse = errors.New("the uploaded file could not be parsed as CSV")

	// ErrSchema is returned when no description or amount column can be located.
	ErrSchema = errors.New("the uploaded file does not contain usable columns")
)
