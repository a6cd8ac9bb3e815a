package journey

import "errors"

var (
	// ErrEmptyTable indicates a table with no rows or zero-width rows.
	ErrEmptyTable = errors.New("journey: table must have at least one row and one column")

	// ErrRaggedRow indicates a row whose length differs from the first row.
	ErrRaggedRow = errors.New("journey: rows must all have the same length")

	// ErrBadChannel indicates a cell that is neither a non-negative id nor Missing.
	ErrBadChannel = errors.New("journey: invalid channel id")

	// ErrBadValue indicates an outcome value that is unparsable, NaN or ±Inf.
	ErrBadValue = errors.New("journey: invalid outcome value")

	// ErrOutOfRange indicates a user or position index outside the table.
	ErrOutOfRange = errors.New("journey: index out of range")
)
