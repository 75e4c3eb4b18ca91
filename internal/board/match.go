package board

// MinRunLen is the minimum length of a run that counts as a match.
const MinRunLen = 3

// MatchInfo is the result of analyzing one position. Each axis is
// either nil (no run of MinRunLen through the position on that axis) or
// the full run's positions ordered left-to-right / top-to-bottom.
// L-shapes are not required; the axes are evaluated independently.
type MatchInfo struct {
	AlongX []int
	AlongY []int
}

// walk collects contiguous positions matching kind, stepping outward
// from idx in direction d. The walk stops at the grid edge and at the
// first hidden or different-kind tile; hidden tiles are match-breakers,
// never transparent. Positions are returned nearest-first and exclude
// idx itself.
func walk(s Store, topo Topology, idx int, d Dir, kind Kind) []int {
	var run []int
	cur := idx
	for !topo.IsEdge(cur, d) {
		next := topo.Neighbor(cur, d)
		t := s.ReadTile(next)
		if t.Hidden || t.Kind != kind {
			break
		}
		run = append(run, next)
		cur = next
	}
	return run
}

// assembleRun joins the two directional walks around center into a
// single run ordered from the negative extreme to the positive one.
// Returns nil when the run is shorter than MinRunLen.
func assembleRun(neg, pos []int, center int) []int {
	n := len(neg) + 1 + len(pos)
	if n < MinRunLen {
		return nil
	}
	run := make([]int, 0, n)
	for i := len(neg) - 1; i >= 0; i-- {
		run = append(run, neg[i])
	}
	run = append(run, center)
	run = append(run, pos...)
	return run
}

// DetectAround analyzes the runs through idx on both axes.
// Returns nil when neither axis carries a run of MinRunLen; a hidden
// tile at idx never matches anything.
func DetectAround(s Store, topo Topology, idx int) *MatchInfo {
	center := s.ReadTile(idx)
	if center.Hidden {
		return nil
	}

	alongX := assembleRun(
		walk(s, topo, idx, DirLeft, center.Kind),
		walk(s, topo, idx, DirRight, center.Kind),
		idx,
	)
	alongY := assembleRun(
		walk(s, topo, idx, DirUp, center.Kind),
		walk(s, topo, idx, DirDown, center.Kind),
		idx,
	)

	if alongX == nil && alongY == nil {
		return nil
	}
	return &MatchInfo{AlongX: alongX, AlongY: alongY}
}
