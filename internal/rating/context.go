// Package rating implements the maximum-likelihood rating engine: the
// encounter aggregator, the convergence solver, the super-player
// estimator, the white-advantage optimizer, the simulation driver and
// the connectivity analyzer, all operating on a single Context owned by
// the caller.
package rating

import "math"

// SigmaFloor is the minimum sigma accepted for any prior or anchor.
// Below this the prior would behave as an effectively hard anchor
// without declaring itself one, which the solver's renormalization
// logic treats specially.
const SigmaFloor = 1e-6

// PerfType classifies a competitor's record for the purposes of the
// solver and the super-player estimator.
type PerfType int

const (
	PerfNormal PerfType = iota
	PerfSuperWinner
	PerfSuperLoser
	PerfNoGames
)

func (p PerfType) String() string {
	switch p {
	case PerfSuperWinner:
		return "SUPERWINNER"
	case PerfSuperLoser:
		return "SUPERLOSER"
	case PerfNoGames:
		return "NOGAMES"
	default:
		return "NORMAL"
	}
}

// Outcome is the discriminated result tag of a single game.
type Outcome int

const (
	WhiteWin Outcome = iota
	Draw
	BlackWin
	Discard
)

// Score maps an outcome to the white side's score in {1, 0.5, 0}.
// Discard has no defined score and must never be scored by a caller.
func (o Outcome) Score() float64 {
	switch o {
	case WhiteWin:
		return 1
	case Draw:
		return 0.5
	case BlackWin:
		return 0
	default:
		panic("rating: Score called on a discarded game")
	}
}

// Competitor is a stable 0-based slot in the population table.
type Competitor struct {
	Name    string
	Rating  float64
	SDev    float64
	Flagged bool
	Perf    PerfType
	Prefed  bool // rating held fixed (hard anchor)

	// Diagnostics populated by the most recent solve; not read by any
	// numeric routine.
	Obtained  float64
	PlayedBy  int
}

// Game is a single recorded pairing. White and Black are indices into
// Context.Competitors; White != Black is an invariant enforced at
// load time.
type Game struct {
	White, Black int
	Outcome      Outcome
}

// Encounter aggregates every non-discarded game between one ordered
// (white, black) pair.
type Encounter struct {
	White, Black int
	W, D, L      int
	Played       int
	WScore       float64
}

// Selectivity controls which games the aggregator folds into an
// encounter table.
type Selectivity int

const (
	Full     Selectivity = iota // include flagged competitors' games
	NoFlagged                   // skip any game touching a flagged competitor
)

// Context owns every array the core operates on. Nothing in this
// package is package-level mutable state; every function takes a
// *Context explicitly.
type Context struct {
	Competitors []Competitor
	Games       []Game

	// Model parameters (spec.md §4.B).
	Beta         float64
	DrawRateEq   float64
	WhiteAdv     float64

	// Configuration (spec.md §6).
	PoolAverage float64
	AnchorIndex int // -1 if unset
	Quiet       bool

	// Priors (spec.md §3, §4.J).
	Priors         []Prior
	RelativePriors []RelativePrior

	// Cached per-competitor aggregates from the most recent
	// aggregation pass; rebuilt by CalcObtainedPlayedBy and
	// CalcExpected.
	Expected []float64
	Obtained []float64
	PlayedBy []int

	// Solver diagnostics.
	LastResidual    float64
	Converged       bool
	OuterPhasesUsed int
}

// NewContext allocates a Context sized for n competitors. BETA is
// derived from rtngAt76Pct per spec.md §4.B.
func NewContext(n int, poolAverage, whiteAdv, rtngAt76Pct, drawRateEq float64) *Context {
	return &Context{
		Competitors: make([]Competitor, n),
		Beta:        betaFromRtng(rtngAt76Pct),
		DrawRateEq:  drawRateEq,
		WhiteAdv:    whiteAdv,
		PoolAverage: poolAverage,
		AnchorIndex: -1,
		Expected:    make([]float64, n),
		Obtained:    make([]float64, n),
		PlayedBy:    make([]int, n),
	}
}

// betaFromRtng computes BETA = 1/invbeta where
// invbeta = rtng_at_76% / (-ln(1/0.76 - 1)).
func betaFromRtng(rtngAt76Pct float64) float64 {
	invbeta := rtngAt76Pct / (-math.Log(1/0.76 - 1))
	return 1 / invbeta
}

// N returns the number of competitors.
func (c *Context) N() int { return len(c.Competitors) }

// AddGame validates and appends a game. white != black is enforced;
// indices must be valid competitor slots.
func (c *Context) AddGame(white, black int, outcome Outcome) error {
	n := c.N()
	if white == black {
		return &InputError{Msg: "white and black index must differ", White: white, Black: black}
	}
	if white < 0 || white >= n || black < 0 || black >= n {
		return &InputError{Msg: "competitor index out of range", White: white, Black: black}
	}
	c.Games = append(c.Games, Game{White: white, Black: black, Outcome: outcome})
	return nil
}

// SetAnchor fixes the rating of competitor idx to the pool average.
func (c *Context) SetAnchor(idx int) error {
	if idx < 0 || idx >= c.N() {
		return &InputError{Msg: "unknown anchor competitor", White: idx, Black: -1}
	}
	c.AnchorIndex = idx
	c.Competitors[idx].Prefed = true
	return nil
}

// hasPriors reports whether any prior or relative prior is active; when
// true, anchor renormalization is skipped because the priors fix the
// absolute scale (spec.md §4.C).
func (c *Context) hasPriors() bool {
	return len(c.Priors) > 0 || len(c.RelativePriors) > 0
}
