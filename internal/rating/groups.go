package rating

import "sort"

// Group is a node in the connectivity DAG: a maximal set of
// competitors mutually reachable by decisive-result paths once
// non-decisive encounters have been contracted (spec.md §3, §4.H).
// Groups are allocated from a fixed arena indexed by ID; Combined is
// a union-find forwarding link used while two groups are being
// merged, resolved by groupFind (path compression).
type Group struct {
	ID           int
	Participants []int
	Beats        []int // groups this group has decisively beaten
	LostTo       []int // groups this group has decisively lost to
	Combined     int   // forwarding link; == ID when not merged away
	Isolated     bool  // not set by AnalyzeGroups, which tracks emitted groups in its live set
}

// GroupResult is one entry of the final, reverse-topologically
// ordered list (spec.md §4.H Output): strongest group first.
type GroupResult struct {
	Participants []int
	Beats        []int
	LostTo       []int
}

// AnalyzeGroups partitions c's competitors into connectivity groups
// and returns them strongest-group-first. It operates on the
// FULL-selectivity encounter table alone and does not touch ratings.
func AnalyzeGroups(c *Context) ([]GroupResult, error) {
	n := c.N()
	encounters := BuildEncounters(c, Full)

	belong := make([]int, n)
	for i := range belong {
		belong[i] = i
	}

	// Step 1: union-find pass over mixed-result encounters (both
	// sides scored at least once).
	for _, e := range encounters {
		if e.WScore > 0 && e.WScore < float64(e.Played) {
			unionGroups(belong, e.White, e.Black)
		}
	}

	arena := make([]*Group, n)
	for i := 0; i < n; i++ {
		if belong[i] == i {
			arena[i] = &Group{ID: i, Combined: i}
		}
	}
	for i := 0; i < n; i++ {
		root := find(belong, i)
		arena[root].Participants = append(arena[root].Participants, i)
	}

	// Step 2: decisive edges between distinct groups, beater->beaten,
	// deduplicated per ordered neighbor pair.
	type edgeKey struct{ from, to int }
	seen := make(map[edgeKey]bool)
	for _, e := range encounters {
		decisive := e.WScore == 0 || e.WScore == float64(e.Played)
		if !decisive {
			continue
		}
		gw := find(belong, e.White)
		gb := find(belong, e.Black)
		if gw == gb {
			continue
		}
		var beater, beaten int
		if e.WScore == float64(e.Played) {
			beater, beaten = gw, gb
		} else {
			beater, beaten = gb, gw
		}
		key := edgeKey{beater, beaten}
		if seen[key] {
			continue
		}
		seen[key] = true
		arena[beater].Beats = append(arena[beater].Beats, beaten)
		arena[beaten].LostTo = append(arena[beaten].LostTo, beater)
	}

	// Step 3: simplify — strip self-loops/duplicates, then collapse
	// any mutual-beat 2-cycle into a single group. Repeat until a
	// full pass performs no merge.
	for {
		merged := false
		for gid, g := range arena {
			if g == nil || g.Combined != g.ID {
				continue
			}
			for _, other := range append([]int(nil), g.Beats...) {
				otherRoot := groupFind(arena, other)
				if otherRoot == gid {
					continue
				}
				if hasEdge(arena, otherRoot, gid) {
					groupGoCombine(arena, gid, otherRoot)
					merged = true
					break
				}
			}
			if merged {
				break
			}
		}
		if !merged {
			break
		}
	}

	// Step 4: topological emission, strongest group first. Beater ->
	// beaten edges give a natural "in-degree zero = currently
	// undefeated" frontier; repeatedly peel it off.
	live := map[int]bool{}
	inDegree := map[int]int{}
	for gid, g := range arena {
		if g == nil || g.Combined != g.ID {
			continue
		}
		live[gid] = true
		inDegree[gid] = 0
	}
	for gid := range live {
		for _, beaten := range dedupNeighbors(arena, gid, true) {
			inDegree[groupFind(arena, beaten)]++
		}
	}

	var order []int
	for len(live) > 0 {
		progressed := false
		ids := make([]int, 0, len(live))
		for gid := range live {
			ids = append(ids, gid)
		}
		sort.Ints(ids)
		for _, gid := range ids {
			if !live[gid] || inDegree[gid] != 0 {
				continue
			}
			order = append(order, gid)
			delete(live, gid)
			for _, beaten := range dedupNeighbors(arena, gid, true) {
				root := groupFind(arena, beaten)
				if live[root] {
					inDegree[root]--
				}
			}
			progressed = true
		}
		if progressed {
			continue
		}

		// No group has in-degree zero: a decisive cycle of length >= 3
		// survived step 3's pairwise collapse (step 3 only contracts
		// mutual 2-cycles). Walk forward along decisive edges until a
		// group repeats, merge every group on that chain into one
		// (spec.md §4.H step 4), and rebuild the frontier.
		if !mergeRemainingCycle(arena, live) {
			return nil, &TopologyError{Msg: "cycle remains after simplification pass"}
		}
		inDegree = recomputeInDegree(arena, live)
	}

	out := make([]GroupResult, 0, len(order))
	for _, gid := range order {
		g := arena[gid]
		sort.Ints(g.Participants)
		out = append(out, GroupResult{
			Participants: g.Participants,
			Beats:        dedupNeighbors(arena, gid, true),
			LostTo:       dedupNeighbors(arena, gid, false),
		})
	}
	return out, nil
}

func unionGroups(belong []int, a, b int) {
	ra, rb := find(belong, a), find(belong, b)
	if ra == rb {
		return
	}
	lo, hi := ra, rb
	if hi < lo {
		lo, hi = hi, lo
	}
	for i := range belong {
		if find(belong, i) == hi {
			belong[i] = lo
		}
	}
}

func find(belong []int, i int) int {
	for belong[i] != i {
		belong[i] = belong[belong[i]]
		i = belong[i]
	}
	return i
}

// groupFind resolves a group id through Combined forwarding links
// with path compression, the arena analog of union-find's find.
func groupFind(arena []*Group, id int) int {
	for arena[id].Combined != id {
		arena[id].Combined = arena[arena[id].Combined].Combined
		id = arena[id].Combined
	}
	return id
}

// hasEdge reports whether from currently has a (possibly
// not-yet-deduplicated) Beats edge resolving to the to group.
func hasEdge(arena []*Group, from, to int) bool {
	for _, nb := range dedupNeighbors(arena, from, true) {
		if groupFind(arena, nb) == to {
			return true
		}
	}
	return false
}

// dedupNeighbors resolves every entry of a group's Beats (beats=true)
// or LostTo (beats=false) list through groupFind and returns the
// sorted set of distinct neighbor roots, excluding self.
func dedupNeighbors(arena []*Group, gid int, beats bool) []int {
	root := groupFind(arena, gid)
	list := arena[gid].Beats
	if !beats {
		list = arena[gid].LostTo
	}
	seen := map[int]bool{}
	var out []int
	for _, nb := range list {
		r := groupFind(arena, nb)
		if r == root || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	sort.Ints(out)
	return out
}

// recomputeInDegree counts, for each still-live group, how many of its
// decisive-win edges come from other still-live groups. Called after
// mergeRemainingCycle folds groups together, since merging changes
// which neighbors resolve to which surviving roots.
func recomputeInDegree(arena []*Group, live map[int]bool) map[int]int {
	inDegree := make(map[int]int, len(live))
	for gid := range live {
		inDegree[gid] = 0
	}
	for gid := range live {
		for _, beaten := range dedupNeighbors(arena, gid, true) {
			root := groupFind(arena, beaten)
			if live[root] {
				inDegree[root]++
			}
		}
	}
	return inDegree
}

// mergeRemainingCycle looks for a chain of decisive wins among live
// groups that loops back on itself (every node its own frontier has
// nonzero in-degree, so one must exist) and collapses every group on
// that chain into a single group, matching groupGoCombine's role in
// the cycle-merge the C implementation performs by walking beater
// links until it revisits a group already on the current walk. It
// tries every live group as a walk origin, since a walk started on a
// group with no live successor (a group that currently beats nothing
// else remaining) can dead-end without ever finding the cycle.
func mergeRemainingCycle(arena []*Group, live map[int]bool) bool {
	starts := make([]int, 0, len(live))
	for gid := range live {
		starts = append(starts, gid)
	}
	sort.Ints(starts)
	for _, start := range starts {
		if walkAndMergeCycle(arena, live, start) {
			return true
		}
	}
	return false
}

// walkAndMergeCycle follows beater->beaten edges from start, always
// taking the lowest-numbered live successor, recording the path. If
// the walk revisits a group already on the path, every group from
// that first occurrence through the end of the path is one cycle;
// they're combined into the first occurrence and removed from live.
// If the walk instead reaches a group with no live successor, it
// cannot close a cycle and the attempt fails without mutating
// anything.
func walkAndMergeCycle(arena []*Group, live map[int]bool, start int) bool {
	pos := make(map[int]int)
	var path []int
	cur := start
	for {
		if p, ok := pos[cur]; ok {
			cycle := path[p:]
			base := cycle[0]
			for _, other := range cycle[1:] {
				groupGoCombine(arena, base, other)
				delete(live, other)
			}
			return true
		}
		pos[cur] = len(path)
		path = append(path, cur)

		next := -1
		for _, nb := range dedupNeighbors(arena, cur, true) {
			root := groupFind(arena, nb)
			if live[root] {
				next = root
				break
			}
		}
		if next == -1 {
			return false
		}
		cur = next
	}
}

// groupGoCombine splices b's participants and edge lists into a and
// sets b's Combined pointer to a, matching the role of the C
// implementation's group_gocombine.
func groupGoCombine(arena []*Group, a, b int) {
	ga, gb := arena[a], arena[b]
	ga.Participants = append(ga.Participants, gb.Participants...)
	ga.Beats = append(ga.Beats, gb.Beats...)
	ga.LostTo = append(ga.LostTo, gb.LostTo...)
	gb.Participants = nil
	gb.Beats = nil
	gb.LostTo = nil
	gb.Combined = a
}
