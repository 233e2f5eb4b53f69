package demogen

import "testing"

func TestGenerateProducesExpectedGameCount(t *testing.T) {
	opts := Options{
		Competitors:     4,
		HandsPerPairing: 10,
		Seed:            1,
		PoolAverage:     1500,
		RtngAt76Pct:     200,
		DrawRateEq:      0.3,
	}
	c, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	wantPairs := opts.Competitors * (opts.Competitors - 1) / 2
	wantGames := wantPairs * opts.HandsPerPairing
	if len(c.Games) != wantGames {
		t.Fatalf("len(Games) = %d, want %d", len(c.Games), wantGames)
	}
	if c.N() != opts.Competitors {
		t.Fatalf("N() = %d, want %d", c.N(), opts.Competitors)
	}
}

func TestGenerateDeterministicForSameSeed(t *testing.T) {
	opts := Options{Competitors: 3, HandsPerPairing: 5, Seed: 99, PoolAverage: 1500, RtngAt76Pct: 200, DrawRateEq: 0.3}
	a, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i := range a.Games {
		if a.Games[i] != b.Games[i] {
			t.Fatalf("game %d differs across runs with the same seed: %+v vs %+v", i, a.Games[i], b.Games[i])
		}
	}
}

func TestGenerateNamesCompetitors(t *testing.T) {
	c, err := Generate(Options{Competitors: 2, HandsPerPairing: 1, Seed: 5, PoolAverage: 1500, RtngAt76Pct: 200, DrawRateEq: 0.3})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if c.Competitors[0].Name == "" || c.Competitors[1].Name == "" {
		t.Fatalf("expected non-empty names, got %q %q", c.Competitors[0].Name, c.Competitors[1].Name)
	}
}
