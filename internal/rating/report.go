package rating

import (
	"math"
	"sort"
)

// CompetitorReport is one row of the sorted reporting projection
// (spec.md §4.I / §6 Outputs).
type CompetitorReport struct {
	Index      int
	Name       string
	Rating     float64
	SDev       float64
	Obtained   float64
	PlayedBy   int
	Perf       PerfType
	Flagged    bool
	SeedGlicko float64 // diagnostic only; see SPEC_FULL.md §3

	// WinRateLow/WinRateHigh are a Wilson-score 95% interval on
	// Obtained/PlayedBy, a nonparametric cross-check that doesn't
	// depend on the simulation replicate count the way SDev does.
	WinRateLow  float64
	WinRateHigh float64
}

// Report is the full structured output of a pipeline run (spec.md §6).
type Report struct {
	Competitors []CompetitorReport
	Groups      []GroupResult

	WhiteAdv     float64
	WhiteAdvSDev float64
	DrawRate     float64
	DrawRateSDev float64

	PairSDev   []float64 // triangular, aligned with Competitors index order
	NonConverged *NonConvergenceWarning
}

// PerfSymbol renders the single-character marker spec.md's
// super-player classification conventionally carries in text reports:
// '+' for a perfect-winner, '-' for a perfect-loser, '*' for a
// competitor with no games, blank otherwise.
func PerfSymbol(p PerfType) string {
	switch p {
	case PerfSuperWinner:
		return "+"
	case PerfSuperLoser:
		return "-"
	case PerfNoGames:
		return "*"
	default:
		return " "
	}
}

// Round rounds x to the given number of decimal places (spec.md §4.I
// "round-to-decimals").
func Round(x float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(x*scale) / scale
}

// BuildReport assembles a Report from the Context's current state,
// sorted by descending rating as spec.md §4.I's "sorted views"
// requires, filtering out competitors below minGamesToReport.
// seedGlicko, if non-nil, is an index-aligned diagnostic rating per
// competitor copied into each row's SeedGlicko field.
func BuildReport(c *Context, sim *SimulationResult, minGamesToReport int, seedGlicko []float64) Report {
	rep := Report{
		WhiteAdv: c.WhiteAdv,
		DrawRate: c.DrawRateEq,
	}
	if sim != nil {
		rep.WhiteAdvSDev = sim.WhiteAdv.SDev(sim.Replicates)
		rep.DrawRateSDev = sim.DrawRate.SDev(sim.Replicates)
		rep.PairSDev = sim.PairSDev
	}

	for i, comp := range c.Competitors {
		if comp.PlayedBy < minGamesToReport {
			continue
		}
		row := CompetitorReport{
			Index:    i,
			Name:     comp.Name,
			Rating:   comp.Rating,
			Obtained: comp.Obtained,
			PlayedBy: comp.PlayedBy,
			Perf:     comp.Perf,
			Flagged:  comp.Flagged,
		}
		if sim != nil {
			row.SDev = sim.RatingSDev[i]
		}
		if comp.PlayedBy > 0 {
			row.WinRateLow, row.WinRateHigh = WilsonScoreCI95(comp.Obtained, comp.PlayedBy)
		}
		if seedGlicko != nil {
			row.SeedGlicko = seedGlicko[i]
		}
		rep.Competitors = append(rep.Competitors, row)
	}
	sort.SliceStable(rep.Competitors, func(i, j int) bool {
		return rep.Competitors[i].Rating > rep.Competitors[j].Rating
	})
	return rep
}
