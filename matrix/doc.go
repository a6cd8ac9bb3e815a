// Package matrix provides the dense numeric store used by the attribution
// engine for position × channel valuations.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix backed by a single flat slice.
//   - Bounds-checked accessors (At, Set, AddAt) that return sentinel errors
//     instead of panicking.
//   - A finite-value policy: NaN and ±Inf are rejected on every write.
//   - Whole-matrix reductions (Sum) and scaling (Scaled) used to turn raw
//     valuations into proportions.
//
// Dense is not safe for concurrent mutation; callers own their instances.
//
// See the examples in this package for usage patterns.
package matrix
