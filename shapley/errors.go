package shapley

import "errors"

var (
	// ErrNilTable indicates New was called without a journey table.
	ErrNilTable = errors.New("shapley: journey table is nil")

	// ErrDimensionMismatch indicates len(values) differs from the table's user count.
	ErrDimensionMismatch = errors.New("shapley: values length must equal number of users")

	// ErrBadValue indicates a NaN or ±Inf outcome value, or valuations that
	// overflowed to ±Inf while fitting.
	ErrBadValue = errors.New("shapley: outcomes and valuations must be finite")

	// ErrNoChannels indicates every touch in the table is missing.
	ErrNoChannels = errors.New("shapley: journey table has no channel touches")

	// ErrZeroNormalization indicates the raw valuations sum to zero.
	ErrZeroNormalization = errors.New("shapley: valuations sum to zero, cannot normalize")

	// ErrUnfitted indicates scoring or inspection before the matching fit ran.
	ErrUnfitted = errors.New("shapley: engine not fitted for requested mode")

	// ErrIndexOutOfRange indicates a scored journey exceeding the fitted
	// position count, or a channel id outside the fitted channel space.
	ErrIndexOutOfRange = errors.New("shapley: journey index out of range")

	// ErrUnknownMode indicates a Mode value other than Ordered or Unordered.
	ErrUnknownMode = errors.New("shapley: unknown scoring mode")
)
