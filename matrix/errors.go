// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All methods return these sentinels (optionally wrapped with call-site
// context) and tests check them via errors.Is. No method panics on
// user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Wrap with fmt.Errorf("ctx: %w", ErrX) when context is needed; callers still
// match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was written or produced.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
