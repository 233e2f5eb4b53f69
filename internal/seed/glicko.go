package seed

import (
	"math"

	"ordorate/internal/rating"
)

// Glicko2 constants, taken verbatim from the paper (and the teacher's
// own adaptation of it).
const (
	g2Scale = 173.7178
	q       = math.Ln10 / 400.0
	pi2     = math.Pi * math.Pi
)

// Glicko2 holds one competitor's rating on the public 1500-scale
// (rating, deviation, volatility), not the paper's internal mu/phi.
type Glicko2 struct {
	Rating     float64
	RD         float64
	Volatility float64
}

// NewGlicko2 returns a player at the standard defaults.
func NewGlicko2() Glicko2 {
	return Glicko2{Rating: 1500, RD: 350, Volatility: 0.06}
}

func toMuPhi(r, rd float64) (mu, phi float64)   { return (r - 1500.0) / g2Scale, rd / g2Scale }
func fromMuPhi(mu, phi float64) (r, rd float64) { return mu*g2Scale + 1500.0, phi * g2Scale }

func gFunc(phi float64) float64 { return 1.0 / math.Sqrt(1.0+3.0*q*q*phi*phi/pi2) }
func gExp(mu, muj, phij float64) float64 {
	return 1.0 / (1.0 + math.Exp(-gFunc(phij)*(mu-muj)))
}

// opponentResult is one opponent's aggregate score S over a rating
// period, S in [0,1].
type opponentResult struct {
	opp Glicko2
	s   float64
}

// updateBatch is the canonical Glicko-2 single-period update (the
// teacher's UpdateBatch, unchanged in its math), given every opponent
// faced this period and the aggregate score against each.
func (a Glicko2) updateBatch(results []opponentResult, tau float64) Glicko2 {
	if len(results) == 0 {
		muA, phiA := toMuPhi(a.Rating, a.RD)
		phiStar := math.Sqrt(phiA*phiA + a.Volatility*a.Volatility)
		a.Rating, a.RD = fromMuPhi(muA, phiStar)
		return a
	}

	muA, phiA := toMuPhi(a.Rating, a.RD)

	var sumG2E, sumGSE float64
	for _, r := range results {
		muB, phiB := toMuPhi(r.opp.Rating, r.opp.RD)
		gB := gFunc(phiB)
		eab := gExp(muA, muB, phiB)
		sumG2E += (gB * gB) * eab * (1.0 - eab)
		sumGSE += gB * (r.s - eab)
	}
	v := 1.0 / (q * q * sumG2E)
	delta := v * q * sumGSE

	if math.Abs(delta) < 1e-12 {
		phiStar := math.Sqrt(phiA*phiA + a.Volatility*a.Volatility)
		phiNew := 1.0 / math.Sqrt(1.0/(phiStar*phiStar)+1.0/v)
		muNew := muA + (phiNew*phiNew)*q*sumGSE
		a.Rating, a.RD = fromMuPhi(muNew, phiNew)
		return a
	}

	a2 := math.Log(a.Volatility * a.Volatility)
	f := func(x float64) float64 {
		ex := math.Exp(x)
		num := ex * (delta*delta - phiA*phiA - v - ex)
		den := 2.0 * (phiA*phiA + v + ex) * (phiA*phiA + v + ex)
		return (num / den) - (x-a2)/(tau*tau)
	}

	A := a2
	var B float64
	if delta*delta > phiA*phiA+v {
		B = math.Log(delta*delta - phiA*phiA - v)
	} else {
		k := 1.0
		for f(a2-k) < 0 && k < 1e6 {
			k *= 2.0
		}
		B = a2 - k
	}
	fA := f(A)
	fB := f(B)
	for it := 0; it < 60 && math.Abs(B-A) > 1e-6; it++ {
		C := A + (A-B)*fA/(fB-fA)
		fC := f(C)
		if math.IsNaN(fC) || math.IsInf(fC, 0) {
			break
		}
		if fC*fB < 0 {
			A = B
			fA = fB
		}
		B = C
		fB = fC
	}

	newVol := math.Exp(B / 2.0)
	phiStar := math.Sqrt(phiA*phiA + newVol*newVol)
	phiNew := 1.0 / math.Sqrt(1.0/(phiStar*phiStar)+1.0/v)
	muNew := muA + (phiNew*phiNew)*q*sumGSE

	a.Rating, a.RD = fromMuPhi(muNew, phiNew)
	a.Volatility = newVol
	return a
}

// SeedGlicko computes a single-period Glicko-2 rating per competitor
// from the full encounter table as a diagnostic cross-check against
// the solver's own fit (SPEC_FULL.md §3). It never writes to
// c.Competitors and its result must not feed the solver.
func SeedGlicko(c *rating.Context) []float64 {
	n := c.N()
	players := make([]Glicko2, n)
	for i := range players {
		players[i] = NewGlicko2()
	}

	encounters := rating.BuildEncounters(c, rating.Full)
	byCompetitor := make([][]opponentResult, n)
	for _, e := range encounters {
		if e.Played == 0 {
			continue
		}
		sWhite := e.WScore / float64(e.Played)
		byCompetitor[e.White] = append(byCompetitor[e.White], opponentResult{opp: players[e.Black], s: sWhite})
		byCompetitor[e.Black] = append(byCompetitor[e.Black], opponentResult{opp: players[e.White], s: 1 - sWhite})
	}

	out := make([]float64, n)
	for i := 0; i < n; i++ {
		updated := players[i].updateBatch(byCompetitor[i], 0.5)
		out[i] = updated.Rating
	}
	return out
}
