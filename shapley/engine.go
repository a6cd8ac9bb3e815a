package shapley

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/attribution/journey"
	"github.com/katalvlaran/attribution/matrix"
)

// New builds an Engine from a journey table and one outcome value per user.
//
// Steps:
//  1. validate inputs (nil table, length mismatch, non-finite values);
//  2. record users, max journey length and the largest channel id;
//  3. derive weight[u] = 1/(touches(u)+1) and copy the outcomes.
//
// Errors:
//   - ErrNilTable: t is nil.
//   - ErrDimensionMismatch: len(values) != t.Users().
//   - ErrBadValue: a value is NaN or ±Inf.
//   - ErrNoChannels: every cell of t is Missing.
func New(t *journey.Table, values []float64, opts ...Option) (*Engine, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if len(values) != t.Users() {
		return nil, fmt.Errorf("got %d values for %d users: %w", len(values), t.Users(), ErrDimensionMismatch)
	}
	for u, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("user %d: %v: %w", u, v, ErrBadValue)
		}
	}
	hi, ok := t.MaxChannel()
	if !ok {
		return nil, ErrNoChannels
	}

	e := &Engine{
		table:      t,
		users:      t.Users(),
		maxJourney: t.Width(),
		nChannels:  int(hi),
		weights:    make([]float64, t.Users()),
		values:     make([]float64, len(values)),
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}

	copy(e.values, values)
	for u := range e.weights {
		e.weights[u] = 1 / float64(t.TouchCount(u)+1)
	}

	e.log.Debug("engine constructed",
		"users", e.users,
		"max_journey", e.maxJourney,
		"n_channels", e.nChannels)

	return e, nil
}

// Fit computes order-agnostic valuations and proportions.
//
// For every channel j in 0..NumChannels(), the coalition is the set of users
// who touched j at any position; a user touching j twice joins once.
// vals[j] = Σ value/weight over the coalition, props = vals / Σ vals.
//
// Fit is atomic: on error the previous unordered state (if any) is kept.
// Calling Fit again on the same engine reproduces the same result.
//
// Errors:
//   - ErrZeroNormalization: Σ vals == 0.
//   - ErrBadValue: Σ vals overflowed to ±Inf.
func (e *Engine) Fit() error {
	vals := make([]float64, e.nChannels+1)
	// seen[j] == u+1 marks channel j as already credited for user u.
	seen := make([]int, e.nChannels+1)

	e.table.Each(func(u int, row []journey.Channel) bool {
		contrib := e.contribution(u)
		for _, c := range row {
			if c == journey.Missing || seen[c] == u+1 {
				continue
			}
			seen[c] = u + 1
			vals[c] += contrib
		}
		return true
	})

	props, err := normalize(vals)
	if err != nil {
		e.log.Debug("fit failed", "error", err)
		return fmt.Errorf("Fit: %w", err)
	}
	e.vals, e.props = vals, props
	e.log.Debug("fit complete", "channels", len(vals))

	return nil
}

// FitOrdered computes position-aware valuations and proportions.
//
// For every position i and channel j, the coalition is the set of users whose
// touch at position i equals j. A channel repeated at two positions credits
// both cells. The whole matrix is normalized by its grand total.
//
// FitOrdered is atomic and idempotent like Fit.
//
// Errors:
//   - ErrZeroNormalization: grand total == 0.
//   - ErrBadValue: a cell or the grand total overflowed to ±Inf.
func (e *Engine) FitOrdered() error {
	vals, err := matrix.NewDense(e.maxJourney, e.nChannels+1)
	if err != nil {
		return fmt.Errorf("FitOrdered: %w", err)
	}

	e.table.Each(func(u int, row []journey.Channel) bool {
		contrib := e.contribution(u)
		for i, c := range row {
			if c == journey.Missing {
				continue
			}
			if err = vals.AddAt(i, int(c), contrib); err != nil {
				return false
			}
		}
		return true
	})
	if err != nil {
		return fmt.Errorf("FitOrdered: valuation overflow: %v: %w", err, ErrBadValue)
	}

	total := vals.Sum()
	if err = checkTotal(total); err != nil {
		e.log.Debug("fit ordered failed", "error", err)
		return fmt.Errorf("FitOrdered: %w", err)
	}
	props, err := vals.Scaled(1 / total)
	if err != nil {
		return fmt.Errorf("FitOrdered: valuation overflow: %v: %w", err, ErrBadValue)
	}
	e.ordVals, e.ordProps = vals, props
	e.log.Debug("fit ordered complete", "positions", e.maxJourney, "channels", e.nChannels+1)

	return nil
}

// contribution is user u's credit to every coalition it joins.
func (e *Engine) contribution(u int) float64 {
	return e.values[u] / e.weights[u]
}

// normalize divides vals by its sum into a new slice.
func normalize(vals []float64) ([]float64, error) {
	var total float64
	for _, v := range vals {
		total += v
	}
	if err := checkTotal(total); err != nil {
		return nil, err
	}
	props := make([]float64, len(vals))
	for j, v := range vals {
		props[j] = v / total
	}

	return props, nil
}

// checkTotal rejects a grand total that cannot normalize: zero, or non-finite
// after finite cells overflowed on summation.
func checkTotal(total float64) error {
	if math.IsInf(total, 0) || math.IsNaN(total) {
		return fmt.Errorf("valuation overflow: total %g: %w", total, ErrBadValue)
	}
	if total == 0 {
		return ErrZeroNormalization
	}

	return nil
}

// Users returns the number of users (table rows).
func (e *Engine) Users() int { return e.users }

// MaxJourney returns the fixed journey width (positions per user).
func (e *Engine) MaxJourney() int { return e.maxJourney }

// NumChannels returns the largest observed channel id. Valuation arrays have
// NumChannels()+1 slots.
func (e *Engine) NumChannels() int { return e.nChannels }

// Weights returns a copy of the per-user weights.
func (e *Engine) Weights() []float64 { return cloneSlice(e.weights) }

// Values returns a copy of the per-user outcome values.
func (e *Engine) Values() []float64 { return cloneSlice(e.values) }

// Fitted reports whether the fit backing mode has completed.
func (e *Engine) Fitted(mode Mode) bool {
	switch mode {
	case Ordered:
		return e.ordProps != nil
	case Unordered:
		return e.props != nil
	default:
		return false
	}
}

// ShapleyValues returns a copy of the raw per-channel valuations from Fit.
func (e *Engine) ShapleyValues() ([]float64, error) {
	if e.vals == nil {
		return nil, fmt.Errorf("ShapleyValues: %w", ErrUnfitted)
	}

	return cloneSlice(e.vals), nil
}

// ShapleyProportions returns a copy of the per-channel proportions from Fit.
func (e *Engine) ShapleyProportions() ([]float64, error) {
	if e.props == nil {
		return nil, fmt.Errorf("ShapleyProportions: %w", ErrUnfitted)
	}

	return cloneSlice(e.props), nil
}

// OrderedValues returns a copy of the raw position × channel valuations.
func (e *Engine) OrderedValues() (*matrix.Dense, error) {
	if e.ordVals == nil {
		return nil, fmt.Errorf("OrderedValues: %w", ErrUnfitted)
	}

	return e.ordVals.Clone(), nil
}

// OrderedProportions returns a copy of the position × channel proportions.
func (e *Engine) OrderedProportions() (*matrix.Dense, error) {
	if e.ordProps == nil {
		return nil, fmt.Errorf("OrderedProportions: %w", ErrUnfitted)
	}

	return e.ordProps.Clone(), nil
}

func cloneSlice(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)

	return out
}
