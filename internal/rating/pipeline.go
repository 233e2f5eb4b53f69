package rating

// PipelineOptions mirrors the configuration knobs of spec.md §6 that
// govern the end-to-end run.
type PipelineOptions struct {
	AdjustWhiteAdvantage bool
	Simulate             int // replicates; < 2 disables sdev
	ConfidencePct        float64
	MinGamesToReport     int
	RNG                  RNG

	// SeedGlickoRatings, if non-nil, is a diagnostic rating per
	// competitor (index-aligned with c.Competitors) computed
	// independently of the solver — e.g. by internal/seed's
	// Glicko-2 cross-check — and copied into each CompetitorReport's
	// SeedGlicko field. Run never computes this itself: doing so
	// would require internal/rating to import the package that
	// itself depends on internal/rating.
	SeedGlickoRatings []float64
}

// Run executes the full pipeline described in spec.md §5:
// aggregate → purge → solve → (optionally: optimize white advantage →
// re-solve) → super-player estimate → simulate → connectivity
// analysis → report. It is the single entry point a CLI or any other
// caller should use. If the caller wants a warm start (SPEC_FULL.md
// §4.K), it must set c.Competitors[i].Rating before calling Run; the
// solver treats any pre-set non-zero rating as its starting point.
func Run(c *Context, opts PipelineOptions) (*Report, error) {
	ClassifySuperPlayers(c)

	PurgeDegenerate(c)
	solveErr := Solve(c)
	if solveErr != nil {
		if _, ok := solveErr.(*NonConvergenceWarning); !ok {
			return nil, solveErr
		}
	}

	if opts.AdjustWhiteAdvantage {
		OptimizeWhiteAdvantage(c)
		if err := Solve(c); err != nil {
			if _, ok := err.(*NonConvergenceWarning); !ok {
				return nil, err
			}
			solveErr = err
		} else {
			solveErr = nil
		}
	}

	// Snapshot the point estimate before simulation mutates the game
	// table in place (spec.md §9).
	pointEstimate := make([]float64, c.N())
	for i := range c.Competitors {
		pointEstimate[i] = c.Competitors[i].Rating
		c.Competitors[i].Obtained = c.Obtained[i]
		c.Competitors[i].PlayedBy = c.PlayedBy[i]
	}

	var sim *SimulationResult
	if opts.Simulate >= 2 {
		var err error
		sim, err = Simulate(c, pointEstimate, opts.Simulate, opts.AdjustWhiteAdvantage, opts.RNG)
		if err != nil {
			return nil, err
		}
		// Restore the point estimate: Simulate's final replicate left
		// ratings at its own (re-solved, resampled) fixed point, not
		// the pre-simulation estimate that is the reported value.
		for i := range c.Competitors {
			c.Competitors[i].Rating = pointEstimate[i]
		}
	}

	groups, err := AnalyzeGroups(c)
	if err != nil {
		return nil, err
	}

	report := BuildReport(c, sim, opts.MinGamesToReport, opts.SeedGlickoRatings)
	report.Groups = groups
	if nc, ok := solveErr.(*NonConvergenceWarning); ok {
		report.NonConverged = nc
	}
	return &report, nil
}
