package rating

import (
	"math"
	"math/rand"
	"sort"
)

// BootstrapCI95 is a nonparametric alternative to ConfidenceFactor's
// Gaussian z-score interval, adapted from the teacher's
// server/stats.go BootstrapCI95: resample vals with replacement b
// times, average each resample, and take the 2.5th/97.5th percentile
// of the resampled means. Useful when a caller distrusts the
// normal-approximation assumption behind the simulation sdev (e.g. a
// competitor with very few games, whose replicate ratings may be
// skewed rather than Gaussian).
func BootstrapCI95(vals []float64, b int, rng *rand.Rand) (low, high float64) {
	n := len(vals)
	if n == 0 || b <= 1 {
		return 0, 0
	}
	means := make([]float64, b)
	for i := 0; i < b; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += vals[rng.Intn(n)]
		}
		means[i] = sum / float64(n)
	}
	sort.Float64s(means)
	lo := int(0.025 * float64(b-1))
	hi := int(0.975 * float64(b-1))
	return means[lo], means[hi]
}

// WilsonCI95 gives a 95% confidence interval on a competitor's win
// rate against the pool (wins + half the draws, out of total
// non-discarded games), adapted from the teacher's WilsonCI95 for
// mirrored-pair win rates.
func WilsonCI95(wins, draws, total int) (low, high float64) {
	if total <= 0 {
		return 0, 1
	}
	score := float64(wins) + 0.5*float64(draws)
	return WilsonScoreCI95(score, total)
}

// WilsonScoreCI95 is WilsonCI95 for callers that already hold an
// aggregated score (wins plus half of draws, as CompetitorReport.Obtained
// does) rather than separate win/draw counts.
func WilsonScoreCI95(score float64, total int) (low, high float64) {
	if total <= 0 {
		return 0, 1
	}
	const z = 1.959964
	n := float64(total)
	p := score / n
	den := 1 + (z*z)/n
	center := p + (z*z)/(2*n)
	half := z * sqrtNonNeg((p*(1-p))/n+(z*z)/(4*n*n))
	return (center - half) / den, (center + half) / den
}

func sqrtNonNeg(x float64) float64 {
	if x < 0 {
		return 0
	}
	return math.Sqrt(x)
}
