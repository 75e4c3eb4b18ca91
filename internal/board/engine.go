package board

import "fmt"

// SwapResult reports the outcome of AttemptSwap. Accepted is false when
// the two positions are not grid-adjacent (the swap was never applied).
// Combo is nil when the swap was applied but produced no match; the
// caller must then revert with RevertSwap. Both are ordinary negative
// results, not errors: they are the common "bad guess" path.
type SwapResult struct {
	Accepted bool
	Combo    *Combo
}

// CellChange records one slot whose content changed during a
// resolution, for driving rendering.
type CellChange struct {
	Pos  int
	Tile Tile
}

// Engine drives a single board through swap attempts, combo resolution
// and cascades. All operations are synchronous and run to completion;
// the engine holds no goroutines and is not safe for concurrent use.
type Engine struct {
	topo  Topology
	store Store
	gen   Generator
}

// NewEngine creates an engine over the given storage and tile
// generator. The grid shape is fixed for the engine's lifetime.
func NewEngine(topo Topology, store Store, gen Generator) *Engine {
	if store == nil {
		panic("board: nil store")
	}
	if gen == nil {
		panic("board: nil generator")
	}
	return &Engine{topo: topo, store: store, gen: gen}
}

// Topology returns the engine's grid shape.
func (e *Engine) Topology() Topology {
	return e.topo
}

// ReadTile returns the tile at idx.
func (e *Engine) ReadTile(idx int) Tile {
	return e.store.ReadTile(idx)
}

// checkPos validates a caller-supplied position.
func (e *Engine) checkPos(idx int) error {
	if !e.topo.InBounds(idx) {
		return fmt.Errorf("board: position %d out of range for %dx%d grid", idx, e.topo.Rows, e.topo.Cols)
	}
	return nil
}

// swap exchanges the contents of two slots.
func (e *Engine) swap(a, b int) {
	ta, tb := e.store.ReadTile(a), e.store.ReadTile(b)
	e.store.WriteTile(a, tb)
	e.store.WriteTile(b, ta)
}

// AttemptSwap validates adjacency of the two positions and, if they are
// adjacent, applies the swap and runs match detection around both.
// When the result carries a nil Combo the swap is left applied so the
// presentation layer can show it before calling RevertSwap.
// An out-of-range position is a caller error, not a bad guess.
func (e *Engine) AttemptSwap(a, b int) (SwapResult, error) {
	if err := e.checkPos(a); err != nil {
		return SwapResult{}, err
	}
	if err := e.checkPos(b); err != nil {
		return SwapResult{}, err
	}

	if !e.topo.Adjacent(a, b) {
		return SwapResult{Accepted: false}, nil
	}

	e.swap(a, b)
	combo := ResolveCombo(
		DetectAround(e.store, e.topo, a),
		DetectAround(e.store, e.topo, b),
	)
	return SwapResult{Accepted: true, Combo: combo}, nil
}

// RevertSwap undoes a swap's storage change without running any match
// logic. The revert only depends on the pair captured when the swap was
// scheduled, so a delayed revert stays correct even if the selection
// has moved on.
func (e *Engine) RevertSwap(a, b int) error {
	if err := e.checkPos(a); err != nil {
		return err
	}
	if err := e.checkPos(b); err != nil {
		return err
	}
	e.swap(a, b)
	return nil
}

// ResolveCombo clears the combo's positions and runs the cascade to
// completion, returning the delta of every slot that changed. Partial
// cascades would leave the grid mid-fall, so the whole resolution runs
// before control returns.
func (e *Engine) ResolveCombo(c *Combo) []CellChange {
	if c.Len() == 0 {
		return nil
	}

	before := e.snapshot()
	MarkCleared(e.store, c)
	Settle(e.store, e.topo, c.Positions)
	return e.diff(before)
}

// Fill writes a generated tile into every slot. Used at construction;
// the no-initial-match policy, if any, belongs to the caller.
func (e *Engine) Fill() {
	for idx := 0; idx < e.topo.Size(); idx++ {
		e.store.WriteTile(idx, Tile{Kind: e.gen()})
	}
}

// Refill spawns generated tiles into every hidden slot and returns the
// changes. This is the board-initialization collaborator's hook for the
// permanently-empty top slots left behind by a cascade.
func (e *Engine) Refill() []CellChange {
	var changes []CellChange
	for _, idx := range HiddenPositions(e.store, e.topo) {
		t := Tile{Kind: e.gen()}
		e.store.WriteTile(idx, t)
		changes = append(changes, CellChange{Pos: idx, Tile: t})
	}
	return changes
}

// snapshot copies the current tiles in index order.
func (e *Engine) snapshot() []Tile {
	tiles := make([]Tile, e.topo.Size())
	for idx := range tiles {
		tiles[idx] = e.store.ReadTile(idx)
	}
	return tiles
}

// diff lists every slot that differs from the snapshot.
func (e *Engine) diff(before []Tile) []CellChange {
	var changes []CellChange
	for idx := range before {
		now := e.store.ReadTile(idx)
		if now != before[idx] {
			changes = append(changes, CellChange{Pos: idx, Tile: now})
		}
	}
	return changes
}
