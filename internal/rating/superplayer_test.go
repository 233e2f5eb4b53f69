package rating

import "testing"

func TestEstimateSuperPlayersWinnerAboveOpponents(t *testing.T) {
	c := newTestContext(3)
	for g := 0; g < 20; g++ {
		mustAddGame(t, c, 0, 1, WhiteWin)
		mustAddGame(t, c, 0, 2, WhiteWin)
	}
	mustAddGame(t, c, 1, 2, Draw)

	c.Competitors[1].Rating = 1500
	c.Competitors[2].Rating = 1500

	ClassifySuperPlayers(c)
	PurgeDegenerate(c)
	EstimateSuperPlayers(c)

	if c.Competitors[0].Rating <= c.Competitors[1].Rating {
		t.Fatalf("superwinner rating %v should exceed opponent rating %v", c.Competitors[0].Rating, c.Competitors[1].Rating)
	}
}

func TestEstimateSuperPlayersLoserBelowOpponents(t *testing.T) {
	c := newTestContext(3)
	for g := 0; g < 20; g++ {
		mustAddGame(t, c, 1, 0, WhiteWin)
		mustAddGame(t, c, 2, 0, WhiteWin)
	}
	mustAddGame(t, c, 1, 2, Draw)

	c.Competitors[1].Rating = 1500
	c.Competitors[2].Rating = 1500

	ClassifySuperPlayers(c)
	PurgeDegenerate(c)
	EstimateSuperPlayers(c)

	if c.Competitors[0].Rating >= c.Competitors[1].Rating {
		t.Fatalf("superloser rating %v should be below opponent rating %v", c.Competitors[0].Rating, c.Competitors[1].Rating)
	}
}
