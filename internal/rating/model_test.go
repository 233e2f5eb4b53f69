package rating

import (
	"math"
	"testing"
)

func TestPredictSymmetry(t *testing.T) {
	beta := betaFromRtng(200)
	a, b := 1500.0, 1400.0
	fab := Predict(a, b, beta)
	fba := Predict(b, a, beta)
	if math.Abs(fab+fba-1) > 1e-12 {
		t.Fatalf("predict(a,b)+predict(b,a) = %v, want 1", fab+fba)
	}
	if math.Abs(Predict(a, a, beta)-0.5) > 1e-12 {
		t.Fatalf("predict(a,a) = %v, want 0.5", Predict(a, a, beta))
	}
}

func TestPredictThreeOutcomeSumsToOne(t *testing.T) {
	beta := betaFromRtng(200)
	for _, dr := range []float64{-800, -200, -1, 0, 1, 200, 800} {
		three := PredictThreeOutcome(dr, 0.3, beta)
		sum := three.Pwin + three.Pdraw + three.Plos
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("dr=%v: probabilities sum to %v, want 1", dr, sum)
		}
		if three.Pwin < 0 || three.Pdraw < 0 || three.Plos < 0 {
			t.Fatalf("dr=%v: negative probability in %+v", dr, three)
		}
	}
}

func TestPredictThreeOutcomeAntisymmetry(t *testing.T) {
	beta := betaFromRtng(200)
	pos := PredictThreeOutcome(150, 0.35, beta)
	neg := PredictThreeOutcome(-150, 0.35, beta)
	if math.Abs(pos.Pwin-neg.Plos) > 1e-12 {
		t.Fatalf("pos.Pwin=%v neg.Plos=%v, want equal", pos.Pwin, neg.Plos)
	}
	if math.Abs(pos.Pdraw-neg.Pdraw) > 1e-12 {
		t.Fatalf("draw probability should be symmetric in dr, got %v vs %v", pos.Pdraw, neg.Pdraw)
	}
}

func TestDrawConcentrationReducesToLiteralFit(t *testing.T) {
	// At dr0 = 0.5 the generalized formula must match the closed-form
	// fit dc = 0.5/(0.5 + 1.23*exp(dr/175)) exactly.
	for _, dr := range []float64{0, 50, 175, 400} {
		got := drawConcentration(dr, 0.5)
		want := 0.5 / (0.5 + 1.23*math.Exp(dr/175.0))
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("dr=%v: drawConcentration=%v, want %v", dr, got, want)
		}
	}
}

func TestBetaFromRtng76Percent(t *testing.T) {
	beta := betaFromRtng(200)
	f := Predict(200, 0, beta)
	if math.Abs(f-0.76) > 1e-9 {
		t.Fatalf("predict at rtng_at_76pct gap = %v, want 0.76", f)
	}
}
