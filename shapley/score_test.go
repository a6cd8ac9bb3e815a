package shapley_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/attribution/journey"
	"github.com/katalvlaran/attribution/shapley"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomEngine builds a deterministic engine with users × width journeys over
// channels 0..channels-1 and strictly positive outcomes.
func randomEngine(t testing.TB, users, width, channels int) *shapley.Engine {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	rows := make([][]journey.Channel, users)
	values := make([]float64, users)
	for u := range rows {
		n := 1 + rng.Intn(width) // at least one touch
		row := make([]journey.Channel, width)
		for p := range row {
			if p < n {
				row[p] = journey.Channel(rng.Intn(channels))
			} else {
				row[p] = journey.Missing
			}
		}
		rows[u] = row
		values[u] = 1 + rng.Float64()*99
	}
	e, err := shapley.New(mustTable(t, rows...), values)
	require.NoError(t, err)

	return e
}

// TestScoreUser_Unfitted requires the matching fit per mode.
func TestScoreUser_Unfitted(t *testing.T) {
	e := threeUsers(t)

	_, err := e.ScoreUser([]journey.Channel{0}, shapley.Ordered)
	assert.ErrorIs(t, err, shapley.ErrUnfitted)
	_, err = e.ScoreUser([]journey.Channel{0}, shapley.Unordered)
	assert.ErrorIs(t, err, shapley.ErrUnfitted)

	require.NoError(t, e.Fit())
	_, err = e.ScoreUser([]journey.Channel{0}, shapley.Ordered)
	assert.ErrorIs(t, err, shapley.ErrUnfitted, "Fit does not satisfy Ordered scoring")

	_, ok := e.LastScore()
	assert.False(t, ok, "failed scores are not retained")
}

// TestScoreUser_Unordered covers the worked example and repeat collapsing.
func TestScoreUser_Unordered(t *testing.T) {
	e := threeUsers(t)
	require.NoError(t, e.Fit())

	s, err := e.ScoreUser([]journey.Channel{0}, shapley.Unordered)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s, eps)

	s, err = e.ScoreUser([]journey.Channel{1, 1, 1}, shapley.Unordered)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s, eps, "repeats count once")

	s, err = e.ScoreUser([]journey.Channel{1, M, 0}, shapley.Unordered)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, eps, "every channel once sums to 1")

	last, ok := e.LastScore()
	assert.True(t, ok)
	assert.Equal(t, s, last)
}

// TestScoreUser_UnorderedAllChannels checks Σ proportions on a larger fit.
func TestScoreUser_UnorderedAllChannels(t *testing.T) {
	e := randomEngine(t, 100, 5, 7)
	require.NoError(t, e.Fit())

	all := make([]journey.Channel, e.NumChannels()+1)
	for c := range all {
		all[c] = journey.Channel(c)
	}
	s, err := e.ScoreUser(all, shapley.Unordered)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-9)
}

// TestScoreUser_Ordered sums position-specific proportions.
func TestScoreUser_Ordered(t *testing.T) {
	e := threeUsers(t)
	require.NoError(t, e.FitOrdered())

	s, err := e.ScoreUser([]journey.Channel{0, 1}, shapley.Ordered)
	require.NoError(t, err)
	assert.InDelta(t, 0.875, s, eps)

	s, err = e.ScoreUser([]journey.Channel{1, 0}, shapley.Ordered)
	require.NoError(t, err)
	assert.InDelta(t, 0.125, s, eps, "order matters")

	s, err = e.ScoreUser([]journey.Channel{M, 1}, shapley.Ordered)
	require.NoError(t, err)
	assert.InDelta(t, 0.375, s, eps, "missing touch keeps its position")

	s, err = e.ScoreUser(nil, shapley.Ordered)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s)
}

// TestScoreUser_OrderedNotCapped shows the score is not clamped to 1.
func TestScoreUser_OrderedNotCapped(t *testing.T) {
	// (0,0) = 10/(1/2) = 20; (0,1) = (1,1) = -1/(1/3) = -3; total 14.
	tbl := mustTable(t, []journey.Channel{0, M}, []journey.Channel{1, 1})
	e, err := shapley.New(tbl, []float64{10, -1})
	require.NoError(t, err)
	require.NoError(t, e.FitOrdered())

	s, err := e.ScoreUser([]journey.Channel{0, 0}, shapley.Ordered)
	require.NoError(t, err)
	assert.InDelta(t, 20.0/14.0, s, eps)
	assert.Greater(t, s, 1.0)
}

// TestScoreUser_OutOfRange rejects long journeys and unknown channels.
func TestScoreUser_OutOfRange(t *testing.T) {
	e := threeUsers(t)
	require.NoError(t, e.Fit())
	require.NoError(t, e.FitOrdered())

	_, err := e.ScoreUser([]journey.Channel{0, 1, 0}, shapley.Ordered)
	assert.ErrorIs(t, err, shapley.ErrIndexOutOfRange, "longer than max journey")

	_, err = e.ScoreUser([]journey.Channel{2}, shapley.Ordered)
	assert.ErrorIs(t, err, shapley.ErrIndexOutOfRange, "channel beyond n_channels")

	_, err = e.ScoreUser([]journey.Channel{5}, shapley.Unordered)
	assert.ErrorIs(t, err, shapley.ErrIndexOutOfRange)

	_, err = e.ScoreUser([]journey.Channel{-7}, shapley.Unordered)
	assert.ErrorIs(t, err, shapley.ErrIndexOutOfRange)

	s, err := e.ScoreUser([]journey.Channel{0, 1, 0, 1}, shapley.Unordered)
	require.NoError(t, err, "unordered mode has no position limit")
	assert.InDelta(t, 1.0, s, eps)
}

// TestScoreUser_UnknownMode rejects modes outside the enum.
func TestScoreUser_UnknownMode(t *testing.T) {
	e := threeUsers(t)
	_, err := e.ScoreUser([]journey.Channel{0}, shapley.Mode(7))
	assert.ErrorIs(t, err, shapley.ErrUnknownMode)
	assert.Equal(t, "Mode(7)", shapley.Mode(7).String())
	assert.False(t, e.Fitted(shapley.Mode(7)))
}

// TestScoreTable scores each row and keeps the final score.
func TestScoreTable(t *testing.T) {
	e := threeUsers(t)
	require.NoError(t, e.FitOrdered())

	tbl := mustTable(t, []journey.Channel{0, 1}, []journey.Channel{1, M})
	scores, err := e.ScoreTable(tbl, shapley.Ordered)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.875, 0.125}, scores, eps)

	last, ok := e.LastScore()
	assert.True(t, ok)
	assert.InDelta(t, 0.125, last, eps)

	wide := mustTable(t, []journey.Channel{0, 1, 1})
	_, err = e.ScoreTable(wide, shapley.Ordered)
	assert.ErrorIs(t, err, shapley.ErrIndexOutOfRange)

	// Row 0 scores 0.875 before row 1 fails; the earlier score survives.
	partial := mustTable(t, []journey.Channel{0, 1}, []journey.Channel{2, M})
	scores, err = e.ScoreTable(partial, shapley.Ordered)
	assert.ErrorIs(t, err, shapley.ErrIndexOutOfRange)
	assert.Nil(t, scores)
	last, ok = e.LastScore()
	assert.True(t, ok)
	assert.InDelta(t, 0.125, last, eps, "failed batch leaves LastScore unchanged")

	_, err = e.ScoreTable(nil, shapley.Ordered)
	assert.ErrorIs(t, err, shapley.ErrNilTable)
}
