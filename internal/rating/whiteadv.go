package rating

import "math"

const (
	whiteAdvInitialDelta = 100.0
	whiteAdvMinDelta     = 0.01
	whiteAdvSafetyStop   = 1000.0
)

// sseWhiteAdv computes E(w) = Σ over non-DISCARD games of
// (predict(rating[white]+w, rating[black]) - score)^2 (spec.md §4.F).
func sseWhiteAdv(c *Context, w float64) float64 {
	var sum float64
	for _, g := range c.Games {
		if g.Outcome == Discard {
			continue
		}
		f := Predict(c.Competitors[g.White].Rating+w, c.Competitors[g.Black].Rating, c.Beta)
		diff := f - g.Outcome.Score()
		sum += diff * diff
	}
	return sum
}

// OptimizeWhiteAdvantage performs a three-point bracket descent on
// E(w) starting from c.WhiteAdv, halving the step whenever the
// midpoint is already the local minimum and otherwise shifting toward
// the lower neighbor, until the step is below 0.01 or |w| exceeds the
// 1000-point safety stop (spec.md §4.F). Returns the optimized value;
// c.WhiteAdv is updated in place.
func OptimizeWhiteAdvantage(c *Context) float64 {
	w := c.WhiteAdv
	delta := whiteAdvInitialDelta

	for delta >= whiteAdvMinDelta && math.Abs(w) <= whiteAdvSafetyStop {
		eLow := sseWhiteAdv(c, w-delta)
		eMid := sseWhiteAdv(c, w)
		eHigh := sseWhiteAdv(c, w+delta)

		switch {
		case eMid <= eLow && eMid <= eHigh:
			delta /= 2
		case eLow < eHigh:
			w -= delta
		default:
			w += delta
		}
	}

	c.WhiteAdv = w
	return w
}
