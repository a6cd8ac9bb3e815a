package shapley

import (
	"log/slog"
	"strconv"

	"github.com/katalvlaran/attribution/journey"
	"github.com/katalvlaran/attribution/matrix"
)

// Mode selects which fitted proportions ScoreUser reads.
//
//   - Ordered: position-aware proportions from FitOrdered (default).
//     A channel repeated at two positions scores at both.
//
//   - Unordered: channel proportions from Fit. The journey is reduced to
//     its set of distinct channels first.
type Mode int

const (
	// Ordered scores against the position × channel proportions.
	Ordered Mode = iota

	// Unordered scores against the per-channel proportions.
	Unordered
)

// String returns "ordered", "unordered" or "Mode(n)".
func (m Mode) String() string {
	switch m {
	case Ordered:
		return "ordered"
	case Unordered:
		return "unordered"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Engine holds the per-user derived data and the fitted attribution state.
//
// The engine borrows the journey table (read-only) and owns the weight and
// outcome arrays; nothing is written back into the table.
type Engine struct {
	table      *journey.Table
	users      int
	maxJourney int
	nChannels  int // largest observed channel id; arrays span 0..nChannels

	weights []float64 // 1/(touches+1) per user
	values  []float64 // outcome per user (copied)

	// unordered fit; nil until Fit succeeds
	vals  []float64
	props []float64

	// ordered fit; nil until FitOrdered succeeds
	ordVals  *matrix.Dense
	ordProps *matrix.Dense

	score  float64
	scored bool

	log *slog.Logger
}
