package demogen

import (
	"math/rand"
	"strconv"

	"ordorate/internal/rating"
)

// Options configures a synthetic database (SPEC_FULL.md §3 domain
// stack: demogen backs the gendemo command).
type Options struct {
	Competitors     int
	HandsPerPairing int
	Seed            int64
	PoolAverage     float64
	WhiteAdv        float64
	RtngAt76Pct     float64
	DrawRateEq      float64
}

// Generate deals Options.HandsPerPairing independent 7-card hold'em
// hands between every unordered pair of Options.Competitors synthetic
// players, scores each with the real hand evaluator, and records one
// game per hand (a tie scores as DRAW). The result is a ready-to-solve
// Context — no rating feeds into the deal, so the database carries no
// a priori skill signal beyond card luck; it exists to exercise the
// rest of the pipeline against a realistic volume of games, not to
// model actual competitive skill.
func Generate(opts Options) (*rating.Context, error) {
	r := rand.New(rand.NewSource(opts.Seed))
	c := rating.NewContext(opts.Competitors, opts.PoolAverage, opts.WhiteAdv, opts.RtngAt76Pct, opts.DrawRateEq)
	for i := range c.Competitors {
		c.Competitors[i].Name = playerName(i)
	}

	for i := 0; i < opts.Competitors; i++ {
		for j := i + 1; j < opts.Competitors; j++ {
			for h := 0; h < opts.HandsPerPairing; h++ {
				outcome := dealOne(r)
				if err := c.AddGame(i, j, outcome); err != nil {
					return nil, err
				}
			}
		}
	}
	return c, nil
}

func dealOne(r *rand.Rand) rating.Outcome {
	deck := NewDeck(r)
	var whiteHole, blackHole [2]Card
	var board [5]Card
	whiteHole[0], whiteHole[1] = deck[0], deck[1]
	blackHole[0], blackHole[1] = deck[2], deck[3]
	copy(board[:], deck[4:9])

	whiteScore := best7(whiteHole, board)
	blackScore := best7(blackHole, board)

	switch {
	case whiteScore < blackScore:
		return rating.WhiteWin
	case blackScore < whiteScore:
		return rating.BlackWin
	default:
		return rating.Draw
	}
}

func playerName(i int) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	if i < len(letters) {
		return "Player" + string(letters[i])
	}
	return "Player" + string(rune('A'+i%26)) + strconv.Itoa(i/26)
}
