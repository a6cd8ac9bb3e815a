// Package journey holds per-user marketing journeys: fixed-width sequences of
// channel touches, padded with a missing-touch marker.
//
// 🚀 What is a journey table?
//
//	One row per user, one column per sequence position. Every row has the
//	same width (the maximum journey length). A cell is either a channel id
//	(a non-negative integer) or Missing.
//
//	   user │ t0  t1  t2
//	   ─────┼────────────
//	     0  │  0   1   ·
//	     1  │  2   ·   ·
//	     2  │  1   1   0
//
// ✨ Key features:
//   - row-major flat storage, bounds-checked access
//   - per-row touch counts and channel membership tests
//   - CSV ingestion for journeys and per-user outcome values
//
// ⚙️ Usage:
//
//	t, err := journey.ReadCSV(f, journey.WithMissingTokens("", "NA"))
//	if err != nil {
//	  // handle ErrRaggedRow, ErrBadChannel, ErrEmptyTable
//	}
//	values, err := journey.ReadValues(g)
//
// A Table is immutable after construction and safe for concurrent reads.
package journey
