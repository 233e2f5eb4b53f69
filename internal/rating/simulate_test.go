package rating

import (
	"math"
	"math/rand"
	"testing"
)

func TestConfidenceFactorKnownValues(t *testing.T) {
	// Two-sided 95% -> ~1.96, 99% -> ~2.576 (standard normal z-factors).
	if got := ConfidenceFactor(95); math.Abs(got-1.959964) > 1e-4 {
		t.Fatalf("ConfidenceFactor(95) = %v, want ~1.95996", got)
	}
	if got := ConfidenceFactor(99); math.Abs(got-2.575829) > 1e-4 {
		t.Fatalf("ConfidenceFactor(99) = %v, want ~2.57583", got)
	}
}

func TestPairIndexPanicsOnNonDescending(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for i <= j")
		}
	}()
	PairIndex(1, 1)
}

func TestPairIndexDistinctForAllPairs(t *testing.T) {
	n := 5
	seen := map[int]bool{}
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			idx := PairIndex(i, j)
			if seen[idx] {
				t.Fatalf("PairIndex(%d,%d)=%d collides with a previous pair", i, j, idx)
			}
			seen[idx] = true
		}
	}
}

func TestSimulateBelowTwoReplicatesReturnsZeroed(t *testing.T) {
	c := newTestContext(3)
	buildRoundRobin(t, c, 10, 0.6)
	result, err := Simulate(c, ratingsOf(c), 1, false, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if result.Replicates != 1 {
		t.Fatalf("Replicates = %d, want 1", result.Replicates)
	}
	for _, sd := range result.RatingSDev {
		if sd != 0 {
			t.Fatalf("expected zeroed sdev below 2 replicates, got %v", sd)
		}
	}
}

func TestSimulateProducesNonNegativeSDevs(t *testing.T) {
	c := newTestContext(4)
	buildRoundRobin(t, c, 20, 0.65)
	if err := Solve(c); err != nil {
		if _, ok := err.(*NonConvergenceWarning); !ok {
			t.Fatalf("Solve: %v", err)
		}
	}
	point := ratingsOf(c)

	result, err := Simulate(c, point, 12, false, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	if result.Replicates != 12 {
		t.Fatalf("Replicates = %d, want 12", result.Replicates)
	}
	for i, sd := range result.RatingSDev {
		if sd < 0 {
			t.Fatalf("RatingSDev[%d] = %v, must be non-negative", i, sd)
		}
	}
	for i, sd := range result.PairSDev {
		if sd < 0 {
			t.Fatalf("PairSDev[%d] = %v, must be non-negative", i, sd)
		}
	}
}

func TestSampleOutcomeRespectsDrawRate(t *testing.T) {
	// At dr=0 the white side's win-or-draw mass equals plos (both are
	// predict(0,0) = 0.5; the draw share comes out of pwin), and a
	// uniform draw inside the draw band must sample a DRAW.
	beta := betaFromRtng(200)
	three := PredictThreeOutcome(0, 0.3, beta)
	if math.Abs(three.Pwin+three.Pdraw-three.Plos) > 1e-12 {
		t.Fatalf("pwin+pdraw=%v plos=%v, want equal at dr=0", three.Pwin+three.Pdraw, three.Plos)
	}
	u := three.Pwin + three.Pdraw/2
	if got := sampleOutcome(0, 0.3, beta, constRNG{uniform: u}); got != Draw {
		t.Fatalf("sampleOutcome(u=%v) = %v, want Draw", u, got)
	}
}
