package shapley

import (
	"fmt"

	"github.com/katalvlaran/attribution/journey"
)

// ScoreUser scores one journey against the fitted proportions of mode.
//
// Ordered (default):
//
//	score = Σ_t orderedProportions[t][journey[t]]
//
//	Requires FitOrdered. The journey may be shorter than MaxJourney() but not
//	longer. Missing touches are skipped and still occupy their position.
//	The score is not capped at 1.
//
// Unordered:
//
//	score = Σ_{c ∈ set(journey)} proportions[c]
//
//	Requires Fit. Order and repeats are discarded, so a journey touching
//	every channel scores Σ proportions = 1.
//
// The result is retained and available through LastScore.
//
// Errors:
//   - ErrUnfitted: the fit backing mode has not run.
//   - ErrIndexOutOfRange: journey longer than MaxJourney() (Ordered), or a
//     channel id outside 0..NumChannels().
//   - ErrUnknownMode: mode is neither Ordered nor Unordered.
func (e *Engine) ScoreUser(j []journey.Channel, mode Mode) (float64, error) {
	var (
		score float64
		err   error
	)
	switch mode {
	case Ordered:
		score, err = e.scoreOrdered(j)
	case Unordered:
		score, err = e.scoreUnordered(j)
	default:
		err = fmt.Errorf("ScoreUser: %v: %w", mode, ErrUnknownMode)
	}
	if err != nil {
		return 0, err
	}

	e.score, e.scored = score, true
	e.log.Debug("scored journey", "mode", mode, "touches", len(j), "score", score)

	return score, nil
}

// ScoreTable scores every row of t in order. On success LastScore holds the
// final row's score. On error no scores are returned and LastScore is left as
// it was before the call. t may be narrower than the fitted table in Ordered
// mode.
func (e *Engine) ScoreTable(t *journey.Table, mode Mode) ([]float64, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	prev, prevOK := e.score, e.scored
	scores := make([]float64, t.Users())
	var err error
	t.Each(func(u int, row []journey.Channel) bool {
		scores[u], err = e.ScoreUser(row, mode)
		if err != nil {
			err = fmt.Errorf("user %d: %w", u, err)
			return false
		}
		return true
	})
	if err != nil {
		e.score, e.scored = prev, prevOK
		return nil, err
	}

	return scores, nil
}

// LastScore returns the most recent successful ScoreUser result.
// The second result is false until a score has been computed.
func (e *Engine) LastScore() (float64, bool) {
	return e.score, e.scored
}

func (e *Engine) scoreOrdered(j []journey.Channel) (float64, error) {
	if e.ordProps == nil {
		return 0, fmt.Errorf("ScoreUser(%v): %w", Ordered, ErrUnfitted)
	}
	if len(j) > e.ordProps.Rows() {
		return 0, fmt.Errorf("ScoreUser: journey length %d exceeds %d positions: %w",
			len(j), e.ordProps.Rows(), ErrIndexOutOfRange)
	}

	var score float64
	for t, c := range j {
		if c == journey.Missing {
			continue
		}
		if err := e.checkChannel(t, c); err != nil {
			return 0, err
		}
		p, err := e.ordProps.At(t, int(c))
		if err != nil {
			return 0, fmt.Errorf("ScoreUser: %v: %w", err, ErrIndexOutOfRange)
		}
		score += p
	}

	return score, nil
}

func (e *Engine) scoreUnordered(j []journey.Channel) (float64, error) {
	if e.props == nil {
		return 0, fmt.Errorf("ScoreUser(%v): %w", Unordered, ErrUnfitted)
	}

	seen := make(map[journey.Channel]struct{}, len(j))
	var score float64
	for t, c := range j {
		if c == journey.Missing {
			continue
		}
		if err := e.checkChannel(t, c); err != nil {
			return 0, err
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		score += e.props[c]
	}

	return score, nil
}

func (e *Engine) checkChannel(pos int, c journey.Channel) error {
	if !c.Valid() || int(c) > e.nChannels {
		return fmt.Errorf("ScoreUser: channel %d at position %d outside 0..%d: %w",
			c, pos, e.nChannels, ErrIndexOutOfRange)
	}

	return nil
}
