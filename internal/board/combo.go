package board

import "sort"

// Combo is the deduplicated union of matched positions produced by one
// swap, spanning the runs around both swapped tiles. Positions are
// strictly ascending by grid index; clearing and cascading depend on
// that order being stable.
type Combo struct {
	Positions []int
}

// Len returns the number of matched positions.
func (c *Combo) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Positions)
}

// Contains reports whether idx is part of the combo.
func (c *Combo) Contains(idx int) bool {
	if c == nil {
		return false
	}
	i := sort.SearchInts(c.Positions, idx)
	return i < len(c.Positions) && c.Positions[i] == idx
}

// ResolveCombo merges the match results around the two swapped tiles.
// Returns nil when both are nil (the swap produced nothing and must be
// reverted). A position appearing in both inputs appears exactly once
// in the output.
func ResolveCombo(a, b *MatchInfo) *Combo {
	if a == nil && b == nil {
		return nil
	}

	seen := make(map[int]struct{})
	for _, m := range []*MatchInfo{a, b} {
		if m == nil {
			continue
		}
		for _, run := range [][]int{m.AlongX, m.AlongY} {
			for _, idx := range run {
				seen[idx] = struct{}{}
			}
		}
	}
	if len(seen) == 0 {
		return nil
	}

	positions := make([]int, 0, len(seen))
	for idx := range seen {
		positions = append(positions, idx)
	}
	sort.Ints(positions)

	return &Combo{Positions: positions}
}

// MarkCleared hides every position in the combo. This is the explicit
// clear step between detection and the cascade; it keeps each tile's
// kind so a revert of unrelated state never observes garbage.
func MarkCleared(s Store, c *Combo) {
	if c == nil {
		return
	}
	for _, idx := range c.Positions {
		t := s.ReadTile(idx)
		t.Hidden = true
		s.WriteTile(idx, t)
	}
}
