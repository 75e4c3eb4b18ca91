package board

// Settle resettles the board after the cleared positions were hidden.
// Visible tiles fall to fill cleared slots; emptiness bubbles upward
// column by column until every initially-cleared column has either been
// refilled from above or carries its emptiness at the top edge. The
// topmost slots stay hidden; spawning fresh tiles into them is the
// board-initialization collaborator's decision, not the engine's.
//
// The loop is iterative with an explicit iterate-and-collect-next-set
// phase per pass, so the working set is never mutated while iterated.
// Each pass either settles a position for good or moves its empty
// marker one row closer to the top edge, so at most Rows passes are
// needed per cleared column.
func Settle(s Store, topo Topology, cleared []int) {
	// pending tracks positions whose emptiness is still bubbling.
	pending := make(map[int]struct{}, len(cleared))
	for _, idx := range cleared {
		if s.ReadTile(idx).Hidden {
			pending[idx] = struct{}{}
		}
	}

	for len(pending) > 0 {
		next := make(map[int]struct{}, len(pending))

		for idx := range pending {
			if topo.IsEdge(idx, DirUp) {
				// Top edge: nothing can fall in. Permanently empty
				// for this resolution.
				continue
			}

			above := topo.Neighbor(idx, DirUp)
			t := s.ReadTile(above)
			if t.Hidden {
				if inFlight(pending, next, above) {
					// The slot above is itself mid-fall; retry once
					// it has resolved.
					next[idx] = struct{}{}
					continue
				}
				// Everything from here to the top edge has settled
				// empty, so this slot is permanently empty too.
				continue
			}

			// Pull the visible tile down one row; the emptiness moves
			// up and keeps bubbling.
			s.WriteTile(idx, t)
			s.WriteTile(above, Tile{Kind: t.Kind, Hidden: true})
			next[above] = struct{}{}
		}

		pending = next
	}
}

// inFlight reports whether idx is still bubbling in either set.
func inFlight(pending, next map[int]struct{}, idx int) bool {
	if _, ok := pending[idx]; ok {
		return true
	}
	_, ok := next[idx]
	return ok
}

// HiddenPositions returns every hidden slot in index order. After
// Settle these are exactly the permanently-empty top-of-column slots.
func HiddenPositions(s Store, topo Topology) []int {
	var hidden []int
	for idx := 0; idx < topo.Size(); idx++ {
		if s.ReadTile(idx).Hidden {
			hidden = append(hidden, idx)
		}
	}
	return hidden
}
