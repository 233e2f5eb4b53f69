package rating

const purgeEpsilon = 1e-3

// ClassifySuperPlayers tags every competitor's PerfType once, using
// FULL-selectivity encounters (spec.md §4.E, set_super_players):
// NOGAMES if playedby==0, SUPERLOSER if obtained < eps, SUPERWINNER if
// playedby-obtained < eps, NORMAL otherwise.
func ClassifySuperPlayers(c *Context) {
	encounters := BuildEncounters(c, Full)
	obtained := make([]float64, c.N())
	playedby := make([]int, c.N())
	CalcObtainedPlayedBy(c, encounters, obtained, playedby)

	for j := range c.Competitors {
		switch {
		case playedby[j] == 0:
			c.Competitors[j].Perf = PerfNoGames
		case obtained[j] < purgeEpsilon:
			c.Competitors[j].Perf = PerfSuperLoser
		case float64(playedby[j])-obtained[j] < purgeEpsilon:
			c.Competitors[j].Perf = PerfSuperWinner
		default:
			c.Competitors[j].Perf = PerfNormal
		}
	}
}

// ClearFlags resets every competitor's transient Flagged bit without
// touching the PERF classification — used before each simulation
// replicate (spec.md §4.E).
func ClearFlags(c *Context) {
	for i := range c.Competitors {
		c.Competitors[i].Flagged = false
	}
}

// PurgeDegenerate repeatedly rebuilds the NOFLAGGED encounter table
// and flags any non-flagged competitor whose effective record is
// degenerate (obtained < eps, or playedby-obtained < eps), looping
// until a full pass flags nothing (spec.md §4.E). Such competitors
// cannot receive a finite rating from the main solver; §4.D handles
// them afterward.
func PurgeDegenerate(c *Context) {
	for {
		encounters := BuildEncounters(c, NoFlagged)
		CalcObtainedPlayedBy(c, encounters, c.Obtained, c.PlayedBy)

		flaggedAny := false
		for j := range c.Competitors {
			if c.Competitors[j].Flagged {
				continue
			}
			obtained := c.Obtained[j]
			playedby := c.PlayedBy[j]
			degenerate := obtained < purgeEpsilon || (float64(playedby)-obtained) < purgeEpsilon
			if degenerate {
				c.Competitors[j].Flagged = true
				flaggedAny = true
			}
		}
		if !flaggedAny {
			return
		}
	}
}
