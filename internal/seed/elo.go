// Package seed provides fast, non-MLE warm-start and cross-check
// rating estimators that run ahead of (or alongside) the convergence
// solver in internal/rating. Neither estimator here feeds back into
// the solver's own math; SeedElo only supplies an initial rating
// vector, and SeedGlicko is diagnostic-only.
package seed

import (
	"math"

	"ordorate/internal/rating"
)

// EloTable is a simple per-competitor incremental Elo tracker, adapted
// from the teacher's mirrored-pair Elo updater but stripped of the
// poker-specific chip/pot scaling: every game update is driven purely
// by the recorded Outcome.
type EloTable struct {
	Ratings []float64
	K       float64
	games   []int // per-competitor update count, for the decay term
}

// NewEloTable allocates a table of n competitors, all starting at
// start, updated with base K-factor k.
func NewEloTable(n int, start, k float64) *EloTable {
	ratings := make([]float64, n)
	for i := range ratings {
		ratings[i] = start
	}
	return &EloTable{Ratings: ratings, K: k, games: make([]int, n)}
}

func (t *EloTable) expect(white, black int) (ew, eb float64) {
	ew = 1.0 / (1.0 + math.Pow(10, (t.Ratings[black]-t.Ratings[white])/400.0))
	return ew, 1.0 - ew
}

func decay(games int) float64 {
	return 1.0 / (1.0 + 0.01*float64(games))
}

// Update applies one game's result, in place, returning the applied
// deltas (dWhite, dBlack).
func (t *EloTable) Update(white, black int, score float64) (dWhite, dBlack float64) {
	ew, eb := t.expect(white, black)
	kw := t.K * decay(t.games[white])
	kb := t.K * decay(t.games[black])
	dWhite = kw * (score - ew)
	dBlack = kb * ((1 - score) - eb)
	t.Ratings[white] += dWhite
	t.Ratings[black] += dBlack
	t.games[white]++
	t.games[black]++
	return dWhite, dBlack
}

// SeedElo replays c.Games in recorded order through a fresh EloTable
// and writes the resulting ratings into c.Competitors[i].Rating,
// giving the solver a warm start instead of the flat zero vector
// NewContext leaves behind. Flagged/Prefed competitors are updated the
// same as any other: flag state and hard anchors only take effect once
// the solver itself runs.
func SeedElo(c *rating.Context, start, k float64) {
	n := c.N()
	table := NewEloTable(n, start, k)
	for _, g := range c.Games {
		if g.Outcome == rating.Discard {
			continue
		}
		table.Update(g.White, g.Black, g.Outcome.Score())
	}
	for i := 0; i < n; i++ {
		c.Competitors[i].Rating = table.Ratings[i]
	}
}
