package rating

import "sort"

// BuildEncounters folds c.Games into the canonical encounter table
// (spec.md §4.A). DISCARD games are skipped; when selectivity is
// NoFlagged, any game touching a flagged competitor is skipped too.
// The result is sorted lexicographically by (white, black) with
// exactly one row per ordered pair that has at least one surviving
// game — idempotent for the same inputs.
func BuildEncounters(c *Context, sel Selectivity) []Encounter {
	singles := make([]Encounter, 0, len(c.Games))
	for _, g := range c.Games {
		if g.Outcome == Discard {
			continue
		}
		if sel == NoFlagged && (c.Competitors[g.White].Flagged || c.Competitors[g.Black].Flagged) {
			continue
		}
		e := Encounter{White: g.White, Black: g.Black, Played: 1}
		switch g.Outcome {
		case WhiteWin:
			e.W = 1
			e.WScore = 1
		case Draw:
			e.D = 1
			e.WScore = 0.5
		case BlackWin:
			e.L = 1
		}
		singles = append(singles, e)
	}

	sort.Slice(singles, func(i, j int) bool {
		if singles[i].White != singles[j].White {
			return singles[i].White < singles[j].White
		}
		return singles[i].Black < singles[j].Black
	})

	out := make([]Encounter, 0, len(singles))
	for _, e := range singles {
		if n := len(out); n > 0 && out[n-1].White == e.White && out[n-1].Black == e.Black {
			out[n-1].W += e.W
			out[n-1].D += e.D
			out[n-1].L += e.L
			out[n-1].Played += e.Played
			out[n-1].WScore += e.WScore
		} else {
			out = append(out, e)
		}
	}
	return out
}

// CalcObtainedPlayedBy fills obtained[j]/playedby[j] for every
// competitor j from the encounter table (spec.md §4.A). Slices must
// already be sized to c.N() and are fully overwritten.
func CalcObtainedPlayedBy(c *Context, encounters []Encounter, obtained []float64, playedby []int) {
	for i := range obtained {
		obtained[i] = 0
	}
	for i := range playedby {
		playedby[i] = 0
	}
	for _, e := range encounters {
		obtained[e.White] += e.WScore
		obtained[e.Black] += float64(e.Played) - e.WScore
		playedby[e.White] += e.Played
		playedby[e.Black] += e.Played
	}
}

// CalcExpected fills expected[j] for every competitor j using the
// two-outcome predictor and the current ratings plus white advantage
// (spec.md §4.A/§4.B).
func CalcExpected(c *Context, encounters []Encounter, expected []float64) {
	for i := range expected {
		expected[i] = 0
	}
	for _, e := range encounters {
		f := Predict(c.Competitors[e.White].Rating+c.WhiteAdv, c.Competitors[e.Black].Rating, c.Beta)
		expected[e.White] += float64(e.Played) * f
		expected[e.Black] += float64(e.Played) * (1 - f)
	}
}
