// Package shapley computes multi-touch marketing attribution with a
// Shapley-inspired coalition heuristic.
//
// 🚀 How does it work?
//
//	Every user contributes outcome/weight to each coalition they belong to,
//	where weight = 1/(touches+1). The implicit "no purchase" state counts as
//	one extra touch, so long journeys spread thinner.
//
//	  • Fit: coalition of channel j = users who touched j anywhere.
//	    Repeated touches of j collapse to one membership.
//	  • FitOrdered: coalition of (i, j) = users whose touch at position i is j.
//	    Repeated touches count once per position.
//
//	Raw valuations are normalized to proportions summing to 1 over the whole
//	result (vector for Fit, full position × channel matrix for FitOrdered).
//
// ✨ Key features:
//   - explicit sentinel errors for dimension mismatch, zero normalization,
//     unfitted scoring and out-of-range journeys
//   - fits are atomic and idempotent; a failed fit keeps earlier results
//   - ScoreUser in Ordered (default) or Unordered mode
//
// ⚙️ Usage:
//
//	e, err := shapley.New(table, values)
//	if err != nil {
//	  // handle ErrDimensionMismatch, ErrNoChannels, ...
//	}
//	if err := e.FitOrdered(); err != nil {
//	  // handle ErrZeroNormalization
//	}
//	score, err := e.ScoreUser([]journey.Channel{0, 2}, shapley.Ordered)
//
// Performance:
//
//   - New:        O(U·L)
//   - Fit:        O(U·L)
//   - FitOrdered: O(U·L)
//   - ScoreUser:  O(L)
//
// where U is the user count and L the journey width. An Engine is not safe
// for concurrent use; give each goroutine its own instance.
package shapley
