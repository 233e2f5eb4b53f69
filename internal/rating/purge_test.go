package rating

import "testing"

func TestClassifySuperPlayers(t *testing.T) {
	c := newTestContext(3)
	// Competitor 0 beats both opponents every game: a perfect winner.
	for g := 0; g < 10; g++ {
		mustAddGame(t, c, 0, 1, WhiteWin)
		mustAddGame(t, c, 0, 2, WhiteWin)
	}
	mustAddGame(t, c, 1, 2, Draw)

	ClassifySuperPlayers(c)

	if c.Competitors[0].Perf != PerfSuperWinner {
		t.Fatalf("competitor 0 perf = %v, want SUPERWINNER", c.Competitors[0].Perf)
	}
	if c.Competitors[1].Perf != PerfNormal || c.Competitors[2].Perf != PerfNormal {
		t.Fatalf("competitors 1,2 perf = %v, %v, want NORMAL", c.Competitors[1].Perf, c.Competitors[2].Perf)
	}
}

func TestClassifySuperPlayersNoGames(t *testing.T) {
	c := newTestContext(2)
	ClassifySuperPlayers(c)
	if c.Competitors[0].Perf != PerfNoGames || c.Competitors[1].Perf != PerfNoGames {
		t.Fatalf("perf = %v, %v, want NOGAMES", c.Competitors[0].Perf, c.Competitors[1].Perf)
	}
}

func TestPurgeDegenerateFlagsPerfectRecordsOnly(t *testing.T) {
	// 0 and 1 only ever meet each other; 2 and 3 draw, so neither has a
	// perfect record.
	c := newTestContext(4)
	for g := 0; g < 10; g++ {
		mustAddGame(t, c, 0, 1, WhiteWin)
	}
	mustAddGame(t, c, 2, 3, Draw)

	PurgeDegenerate(c)

	if !c.Competitors[0].Flagged {
		t.Fatalf("competitor 0 (perfect winner vs 1) should be flagged")
	}
	if !c.Competitors[1].Flagged {
		t.Fatalf("competitor 1 (perfect loser vs 0) should be flagged")
	}
	if c.Competitors[2].Flagged {
		t.Fatalf("competitor 2 should not be flagged")
	}
}

func TestPurgeDegenerateCascades(t *testing.T) {
	// 0 wins every game and 1 loses every game, so both are flagged on
	// the first pass. 2 lost to 0 and beat 1, a mixed record, but once 0
	// and 1 are flagged it has no non-flagged games at all.
	c := newTestContext(3)
	for g := 0; g < 10; g++ {
		mustAddGame(t, c, 0, 1, WhiteWin)
	}
	mustAddGame(t, c, 0, 2, WhiteWin)
	mustAddGame(t, c, 2, 1, WhiteWin)

	PurgeDegenerate(c)

	if !c.Competitors[0].Flagged || !c.Competitors[1].Flagged {
		t.Fatalf("expected 0 and 1 flagged")
	}
	if !c.Competitors[2].Flagged {
		t.Fatalf("expected cascade to flag competitor 2 once its only games touch a flagged opponent")
	}
}

func TestClearFlagsPreservesPerf(t *testing.T) {
	c := newTestContext(2)
	c.Competitors[0].Flagged = true
	c.Competitors[0].Perf = PerfSuperWinner

	ClearFlags(c)

	if c.Competitors[0].Flagged {
		t.Fatalf("ClearFlags left Flagged set")
	}
	if c.Competitors[0].Perf != PerfSuperWinner {
		t.Fatalf("ClearFlags touched Perf: got %v", c.Competitors[0].Perf)
	}
}
