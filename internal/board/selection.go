package board

// Selection holds the two-click swap lifecycle: both positions unset,
// then picked set by the first click, then target set by a second click
// on an adjacent slot, then both cleared after the swap resolves or is
// reverted. At most one swap evaluation is in flight at a time.
type Selection struct {
	picked    int
	target    int
	hasPicked bool
	hasTarget bool
}

// HasPicked reports whether a first tile is selected.
func (s *Selection) HasPicked() bool {
	return s.hasPicked
}

// HasTarget reports whether both tiles are selected.
func (s *Selection) HasTarget() bool {
	return s.hasTarget
}

// Picked returns the first selected position. Valid only when
// HasPicked is true.
func (s *Selection) Picked() int {
	return s.picked
}

// Target returns the second selected position. Valid only when
// HasTarget is true.
func (s *Selection) Target() int {
	return s.target
}

// Clear resets the selection to the both-unset state.
func (s *Selection) Clear() {
	*s = Selection{}
}

// Click advances the lifecycle with a click on idx. It returns true
// when the click completed a picked/target pair; the caller should then
// attempt the swap and Clear after resolution.
//
// A click on the picked tile deselects it; a click on a non-adjacent
// tile re-picks there instead of becoming the target, so picked and
// target are always grid-adjacent when both are set.
func (s *Selection) Click(topo Topology, idx int) bool {
	if s.hasTarget {
		// A swap evaluation is already in flight.
		return false
	}
	if !s.hasPicked {
		s.picked = idx
		s.hasPicked = true
		return false
	}
	if idx == s.picked {
		s.Clear()
		return false
	}
	if !topo.Adjacent(s.picked, idx) {
		s.picked = idx
		return false
	}
	s.target = idx
	s.hasTarget = true
	return true
}
