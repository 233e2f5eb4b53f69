package rating

import "testing"

func TestAnalyzeGroupsMergesCycleAndIsolates(t *testing.T) {
	// A-B drawn (one mixed-result group), C beats D and D beats C (a
	// 2-cycle that must collapse into one group), E never plays.
	c := newTestContext(5)
	mustAddGame(t, c, 0, 1, Draw)
	mustAddGame(t, c, 2, 3, WhiteWin)
	mustAddGame(t, c, 3, 2, WhiteWin)

	groups, err := AnalyzeGroups(c)
	if err != nil {
		t.Fatalf("AnalyzeGroups: %v", err)
	}
	if len(groups) != 3 {
		t.Fatalf("len(groups) = %d, want 3: %+v", len(groups), groups)
	}

	wantParticipants := [][]int{{0, 1}, {2, 3}, {4}}
	for i, g := range groups {
		if !intSliceEqual(g.Participants, wantParticipants[i]) {
			t.Fatalf("groups[%d].Participants = %v, want %v", i, g.Participants, wantParticipants[i])
		}
	}
}

func TestAnalyzeGroupsDecisiveEdgeOrdersStrongerFirst(t *testing.T) {
	// Two singleton groups, 0 decisively beats 1: 0's group must be
	// emitted before 1's (strongest group first).
	c := newTestContext(2)
	for g := 0; g < 5; g++ {
		mustAddGame(t, c, 0, 1, WhiteWin)
	}

	groups, err := AnalyzeGroups(c)
	if err != nil {
		t.Fatalf("AnalyzeGroups: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	if groups[0].Participants[0] != 0 {
		t.Fatalf("expected competitor 0's group first, got %+v", groups[0])
	}
	if len(groups[0].Beats) != 1 {
		t.Fatalf("winner group Beats = %v, want one edge to the loser group", groups[0].Beats)
	}
	if len(groups[1].LostTo) != 1 {
		t.Fatalf("loser group LostTo = %v, want one edge from the winner group", groups[1].LostTo)
	}
}

func TestAnalyzeGroupsMergesDecisiveCycleLongerThanTwo(t *testing.T) {
	// A rock-paper-scissors triad: 0 beats 1, 1 beats 2, 2 beats 0, all
	// decisive with no mixed-result encounters anywhere among them.
	// Step 3 only collapses mutual 2-cycles, so this 3-cycle must be
	// caught by the chain-walk merge during emission instead, or
	// AnalyzeGroups would return a TopologyError despite valid input.
	// 3 never plays, so it starts (and stays) at in-degree zero and is
	// emitted before the cycle is even reached.
	c := newTestContext(4)
	mustAddGame(t, c, 0, 1, WhiteWin)
	mustAddGame(t, c, 1, 2, WhiteWin)
	mustAddGame(t, c, 2, 0, WhiteWin)

	groups, err := AnalyzeGroups(c)
	if err != nil {
		t.Fatalf("AnalyzeGroups: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2: %+v", len(groups), groups)
	}
	if !intSliceEqual(groups[0].Participants, []int{3}) {
		t.Fatalf("groups[0].Participants = %v, want [3]", groups[0].Participants)
	}
	if !intSliceEqual(groups[1].Participants, []int{0, 1, 2}) {
		t.Fatalf("groups[1].Participants = %v, want [0 1 2]", groups[1].Participants)
	}
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
