package journey

import "fmt"

// NewTable builds a Table from caller-owned rows.
// The rows are copied; later changes to the input do not affect the Table.
//
// Validation order:
//  1. at least one row, first row non-empty  → ErrEmptyTable
//  2. every row has the first row's length   → ErrRaggedRow
//  3. every cell is a valid id or Missing    → ErrBadChannel
//
// Complexity: O(users·width).
func NewTable(rows [][]Channel) (*Table, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyTable
	}
	width := len(rows[0])
	cells := make([]Channel, 0, len(rows)*width)
	for u, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", u, len(row), width, ErrRaggedRow)
		}
		for p, c := range row {
			if c != Missing && !c.Valid() {
				return nil, fmt.Errorf("row %d, position %d: %d: %w", u, p, c, ErrBadChannel)
			}
		}
		cells = append(cells, row...)
	}

	return &Table{users: len(rows), width: width, cells: cells}, nil
}

// Users returns the number of rows.
func (t *Table) Users() int { return t.users }

// Width returns the fixed journey length (max_journey).
func (t *Table) Width() int { return t.width }

// At returns the touch of user u at position p.
func (t *Table) At(u, p int) (Channel, error) {
	if u < 0 || u >= t.users || p < 0 || p >= t.width {
		return Missing, fmt.Errorf("Table.At(%d,%d): %w", u, p, ErrOutOfRange)
	}

	return t.cells[u*t.width+p], nil
}

// Row returns a copy of user u's journey, including Missing padding.
func (t *Table) Row(u int) ([]Channel, error) {
	if u < 0 || u >= t.users {
		return nil, fmt.Errorf("Table.Row(%d): %w", u, ErrOutOfRange)
	}
	out := make([]Channel, t.width)
	copy(out, t.row(u))

	return out, nil
}

// TouchCount returns the number of non-missing cells in user u's journey.
// Out-of-range users count as zero touches.
func (t *Table) TouchCount(u int) int {
	if u < 0 || u >= t.users {
		return 0
	}
	n := 0
	for _, c := range t.row(u) {
		if c != Missing {
			n++
		}
	}

	return n
}

// Contains reports whether user u touched channel c at any position.
func (t *Table) Contains(u int, c Channel) bool {
	if u < 0 || u >= t.users || !c.Valid() {
		return false
	}
	for _, x := range t.row(u) {
		if x == c {
			return true
		}
	}

	return false
}

// MaxChannel returns the largest channel id in the table.
// The second result is false when every cell is Missing.
func (t *Table) MaxChannel() (Channel, bool) {
	hi := Missing
	for _, c := range t.cells {
		if c > hi {
			hi = c
		}
	}

	return hi, hi != Missing
}

// Each calls f for every user with a read-only view of the row.
// f must not retain or modify row. Iteration stops when f returns false.
func (t *Table) Each(f func(u int, row []Channel) bool) {
	for u := 0; u < t.users; u++ {
		if !f(u, t.row(u)) {
			return
		}
	}
}

// row returns the backing slice for user u (no copy, no bounds check).
func (t *Table) row(u int) []Channel {
	return t.cells[u*t.width : (u+1)*t.width : (u+1)*t.width]
}
