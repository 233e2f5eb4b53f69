package rating

import "math"

const (
	superPlayerStart      = 2000.0
	superPlayerStep       = 200.0
	superPlayerTolerance  = 1e-10
	superPlayerMaxRounds  = 2000
)

// opponentWeight is one term of the log-sum product used by
// EstimateSuperPlayers: an opponent's rating (already offset by white
// advantage as seen by the super-player) and the number of games
// played against them.
type opponentWeight struct {
	oppRating float64
	weight    float64
}

// EstimateSuperPlayers re-estimates every competitor flagged
// PERF_SUPERWINNER or PERF_SUPERLOSER (spec.md §4.D), for whom the
// main solver's gradient is identically zero or ill-defined. Uses the
// FULL-selectivity encounter table so opponents' fitted ratings are
// read regardless of their own flag state.
func EstimateSuperPlayers(c *Context) {
	encounters := BuildEncounters(c, Full)
	byCompetitor := make(map[int][]opponentWeight)
	for _, e := range encounters {
		if e.White < len(c.Competitors) {
			if c.Competitors[e.White].Perf == PerfSuperWinner || c.Competitors[e.White].Perf == PerfSuperLoser {
				byCompetitor[e.White] = append(byCompetitor[e.White], opponentWeight{
					oppRating: c.Competitors[e.Black].Rating - c.WhiteAdv,
					weight:    float64(e.Played),
				})
			}
		}
		if c.Competitors[e.Black].Perf == PerfSuperWinner || c.Competitors[e.Black].Perf == PerfSuperLoser {
			byCompetitor[e.Black] = append(byCompetitor[e.Black], opponentWeight{
				oppRating: c.Competitors[e.White].Rating + c.WhiteAdv,
				weight:    float64(e.Played),
			})
		}
	}

	for idx, opponents := range byCompetitor {
		comp := &c.Competitors[idx]
		comp.Rating = estimateOneSuperPlayer(c, opponents, comp.Perf)
	}
}

// estimateOneSuperPlayer solves, by fixed-step search with step
// halving, for the rating r satisfying the 0.5-target criterion of
// spec.md §4.D: the cumulative sweep probability P(r) = Π P_outcome(r
// - opp_i)^weight_i hits 0.5. Underflow in the product is avoided via
// the log-sum formulation cume += weight*log(p) (spec.md §7).
func estimateOneSuperPlayer(c *Context, opponents []opponentWeight, perf PerfType) float64 {
	r := superPlayerStart
	step := superPlayerStep
	prevAbs := math.Inf(1)

	for i := 0; i < superPlayerMaxRounds; i++ {
		residual := superPlayerResidual(c, r, opponents, perf)
		if math.Abs(residual) < superPlayerTolerance {
			break
		}
		if math.Abs(residual) > prevAbs {
			step /= 2
		}
		prevAbs = math.Abs(residual)
		if residual > 0 {
			r += step
		} else {
			r -= step
		}
	}
	return r
}

// superPlayerResidual returns +0.5 - P(r) for a superwinner and
// -0.5 + P(r) for a superloser, where P(r) is the sweep probability
// of the observed perfect record under the candidate rating r.
func superPlayerResidual(c *Context, r float64, opponents []opponentWeight, perf PerfType) float64 {
	var cume float64 // log-domain accumulator
	for _, o := range opponents {
		three := PredictThreeOutcome(r-o.oppRating, c.DrawRateEq, c.Beta)
		var p float64
		if perf == PerfSuperWinner {
			p = three.Pwin
		} else {
			p = three.Plos
		}
		if p <= 0 {
			p = 1e-300
		}
		cume += o.weight * math.Log(p)
	}
	p := math.Exp(cume)
	if perf == PerfSuperWinner {
		return 0.5 - p
	}
	return -0.5 + p
}
