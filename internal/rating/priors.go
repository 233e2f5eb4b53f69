package rating

import "fmt"

// Prior is a loose anchor: a per-competitor (value, sigma) pull toward
// value with uncertainty sigma. sigma == 0 upgrades it to a hard
// anchor: it sets Prefed and fixes the rating exactly (spec.md §3).
type Prior struct {
	Competitor int
	Value      float64
	Sigma      float64
	IsSet      bool
}

// RelativePrior asserts rating(PlayerA) - rating(PlayerB) ≈ Delta with
// uncertainty Sigma (spec.md §3, grounded on original_source/relprior.c).
type RelativePrior struct {
	PlayerA, PlayerB int
	Delta, Sigma     float64
}

// AddPrior validates and installs a loose (or, if sigma==0, hard)
// anchor for competitor idx.
func (c *Context) AddPrior(idx int, value, sigma float64) error {
	if idx < 0 || idx >= c.N() {
		return &InputError{Msg: "prior references unknown competitor", White: idx, Black: -1}
	}
	if sigma < 0 {
		return &InputError{Msg: "prior sigma cannot be negative", White: idx, Black: -1}
	}
	if sigma > 0 && sigma <= SigmaFloor {
		return &InputError{Msg: fmt.Sprintf("prior sigma %.3g at or below floor", sigma), White: idx, Black: -1}
	}
	c.Priors = append(c.Priors, Prior{Competitor: idx, Value: value, Sigma: sigma, IsSet: true})
	if sigma == 0 {
		c.Competitors[idx].Prefed = true
		c.Competitors[idx].Rating = value
	}
	return nil
}

// AddRelativePrior validates and installs a relative prior between
// two competitors, mirroring original_source/relprior.c's
// assign_relative_prior/set_relprior.
func (c *Context) AddRelativePrior(a, b int, delta, sigma float64) error {
	if a < 0 || a >= c.N() || b < 0 || b >= c.N() {
		return &InputError{Msg: "relative prior references unknown competitor", White: a, Black: b}
	}
	if sigma < 0 {
		return &InputError{Msg: "relative prior sigma cannot be negative", White: a, Black: b}
	}
	if sigma <= SigmaFloor {
		return &InputError{Msg: fmt.Sprintf("relative prior sigma %.3g too small", sigma), White: a, Black: b}
	}
	c.RelativePriors = append(c.RelativePriors, RelativePrior{PlayerA: a, PlayerB: b, Delta: delta, Sigma: sigma})
	return nil
}

// PriorBaseline is a copy of every prior's declared value and every
// relative prior's declared delta, taken before any simulation
// replicate perturbs them. Shuffle re-rolls from this baseline on
// every call instead of perturbing whatever the previous replicate
// left behind, so the perturbation stays Gaussian(0, sigma) around the
// stated base rather than a random walk whose variance grows with the
// replicate count.
type PriorBaseline struct {
	values []float64
	deltas []float64
}

// SnapshotPriors captures the current prior values/deltas as the
// baseline for subsequent Shuffle calls, matching
// original_source/relprior.c's relpriors_copy into a working set
// before relpriors_shuffle perturbs it.
func (c *Context) SnapshotPriors() PriorBaseline {
	values := make([]float64, len(c.Priors))
	for i, p := range c.Priors {
		values[i] = p.Value
	}
	deltas := make([]float64, len(c.RelativePriors))
	for i, rp := range c.RelativePriors {
		deltas[i] = rp.Delta
	}
	return PriorBaseline{values: values, deltas: deltas}
}

// Shuffle resets every active prior's value (and every relative
// prior's delta) to base's recorded value plus a fresh Gaussian(0,
// sigma) draw, matching original_source/relprior.c's
// relpriors_shuffle. Call once per simulation replicate (spec.md
// §4.G) against the same baseline so replicates perturb independently
// rather than accumulating drift across the run.
func (c *Context) Shuffle(base PriorBaseline, rng GaussianSource) {
	for i := range c.Priors {
		p := &c.Priors[i]
		if p.Sigma <= 0 {
			continue // hard anchor: never perturbed
		}
		p.Value = base.values[i] + rng.NormFloat64()*p.Sigma
	}
	for i := range c.RelativePriors {
		rp := &c.RelativePriors[i]
		rp.Delta = base.deltas[i] + rng.NormFloat64()*rp.Sigma
	}
}

// FormatPriors renders the active relative anchors the way
// original_source/relprior.c's relpriors_show prints them to the
// console, e.g. for progress logging ahead of a solve.
func (c *Context) FormatPriors() string {
	if len(c.RelativePriors) == 0 {
		return "Relative Anchors = none\n"
	}
	s := "Relative Anchors {\n"
	for _, rp := range c.RelativePriors {
		s += fmt.Sprintf("[%s] [%s] = %.1f +/- %.1f\n",
			c.Competitors[rp.PlayerA].Name, c.Competitors[rp.PlayerB].Name, rp.Delta, rp.Sigma)
	}
	s += "}\n"
	return s
}
