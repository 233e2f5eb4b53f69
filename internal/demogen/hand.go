package demogen

import (
	poker "github.com/paulhankin/poker"
)

// toPH converts a demogen Card to the library's representation,
// adapted from the teacher's engine/eval_ph.go toPH.
func toPH(c Card) poker.Card {
	var s poker.Suit
	switch c.Suit {
	case 'c':
		s = poker.Club
	case 'd':
		s = poker.Diamond
	case 'h':
		s = poker.Heart
	case 's':
		s = poker.Spade
	default:
		s = poker.Club
	}
	var r poker.Rank
	if c.Rank == 14 {
		r = poker.Rank(1)
	} else {
		r = poker.Rank(c.Rank)
	}
	card, _ := poker.MakeCard(s, r)
	return card
}

// best7 scores the best hand available from 2 hole cards plus a
// 5-card board. Smaller score is stronger, matching the library's
// convention (adapted from engine/eval_ph.go's best5of7, specialized
// to the fixed 7-card case this package always deals).
func best7(hole [2]Card, board [5]Card) int16 {
	var a7 [7]poker.Card
	a7[0], a7[1] = toPH(hole[0]), toPH(hole[1])
	for i, c := range board {
		a7[2+i] = toPH(c)
	}
	return poker.Eval7(&a7)
}
