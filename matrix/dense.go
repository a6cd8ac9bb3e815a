// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/AddAt return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce the finite-value policy (NaN/Inf rejected) from a single place.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/AddAt: O(1); Clone/Sum/Scaled: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxAddAt  = "AddAt"
	ctxScaled = "Scaled"
	ctxRow    = "Row"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with a uniform Dense context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	// make() zero-fills the buffer deterministically.
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// MAIN DESCRIPTION:
//   - Safe element write with the finite-only policy.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// AddAt accumulates delta into (row, col).
// MAIN DESCRIPTION:
//   - In-place accumulation used by coalition sums; equivalent to
//     Set(row, col, At(row, col)+delta) with a single bounds check.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf when delta or the result is non-finite.
//     The cell is left unchanged on error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) AddAt(row, col int, delta float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxAddAt, row, col, err)
	}
	nv := m.data[off] + delta
	if math.IsNaN(nv) || math.IsInf(nv, 0) {
		return denseErrorf(ctxAddAt, row, col, ErrNaNInf)
	}
	m.data[off] = nv

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange when i is outside [0, Rows()).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Sum returns the grand total of all cells.
// Determinism: fixed row-major accumulation order.
// Complexity: O(r*c).
func (m *Dense) Sum() float64 {
	var total float64
	for _, v := range m.data {
		total += v
	}

	return total
}

// Scaled returns a new matrix with every cell multiplied by alpha.
// MAIN DESCRIPTION:
//   - Copy-then-scale; the receiver is never modified.
//
// Implementation:
//   - Stage 1: reject non-finite alpha.
//   - Stage 2: allocate result and scale in row-major order.
//   - Stage 3: reject any non-finite product (overflow).
//
// Errors:
//   - ErrNaNInf when alpha or any product is non-finite.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Scaled(alpha float64) (*Dense, error) {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, fmt.Errorf("Dense.%s(%g): %w", ctxScaled, alpha, ErrNaNInf)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	var v float64
	for off := range m.data {
		v = m.data[off] * alpha
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, denseErrorf(ctxScaled, off/m.c, off%m.c, ErrNaNInf)
		}
		out.data[off] = v
	}

	return out, nil
}

// Clone returns a deep copy. Mutations on the copy do not affect the original.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders rows as lines with comma-separated values (%g).
// Intended for logs and debugging; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
