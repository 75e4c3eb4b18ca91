// Package board implements the match-3 engine: grid topology, run
// detection around a swapped pair, combo merging, and the gravity
// cascade that resettles the board after a clear.
// The package is UI-agnostic and deterministic; rendering, input and
// board-initialization policy live in the game shell.
package board

import "fmt"

// Dir represents one of the four cardinal walk directions on the grid.
type Dir uint8

const (
	DirLeft Dir = iota
	DirUp
	DirRight
	DirDown
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	switch d {
	case DirLeft:
		return DirRight
	case DirUp:
		return DirDown
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	default:
		return d
	}
}

// AllDirs returns the four directions in walk order.
func AllDirs() []Dir {
	return []Dir{DirLeft, DirUp, DirRight, DirDown}
}

// Topology provides pure index arithmetic over a flat rows*cols store.
// Cells are stored in row-major order: index = row*cols + col.
// The shape is fixed for the lifetime of the value.
type Topology struct {
	Rows int
	Cols int
}

// NewTopology creates a topology for a rows*cols grid.
// Panics if either dimension is not positive.
func NewTopology(rows, cols int) Topology {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("board: invalid grid shape %dx%d", rows, cols))
	}
	return Topology{Rows: rows, Cols: cols}
}

// Size returns the number of cells in the grid.
func (t Topology) Size() int {
	return t.Rows * t.Cols
}

// InBounds returns true if idx is a valid cell index.
func (t Topology) InBounds(idx int) bool {
	return idx >= 0 && idx < t.Size()
}

// Index converts (row, col) to a flat index.
func (t Topology) Index(row, col int) int {
	return row*t.Cols + col
}

// RowCol converts a flat index to (row, col).
func (t Topology) RowCol(idx int) (row, col int) {
	return idx / t.Cols, idx % t.Cols
}

// delta returns the flat-index offset for one step in the direction.
func (t Topology) delta(d Dir) int {
	switch d {
	case DirLeft:
		return -1
	case DirUp:
		return -t.Cols
	case DirRight:
		return 1
	case DirDown:
		return t.Cols
	default:
		return 0
	}
}

// IsEdge returns true if moving one step from idx in direction d would
// leave the grid. Left/right are column-boundary checks so a walk never
// wraps across rows; up/down check against row 0 and the last row.
func (t Topology) IsEdge(idx int, d Dir) bool {
	switch d {
	case DirLeft:
		return idx%t.Cols == 0
	case DirRight:
		return (idx+1)%t.Cols == 0
	case DirUp:
		return idx < t.Cols
	case DirDown:
		return idx >= (t.Rows-1)*t.Cols
	default:
		return true
	}
}

// Neighbor returns the index adjacent to idx in direction d.
// Callers must check IsEdge first; stepping across an edge is a
// programmer error and panics rather than silently wrapping.
func (t Topology) Neighbor(idx int, d Dir) int {
	if t.IsEdge(idx, d) {
		panic(fmt.Sprintf("board: neighbor %s of %d crosses the grid edge", d, idx))
	}
	return idx + t.delta(d)
}

// Adjacent returns true if a and b are cardinal neighbors.
func (t Topology) Adjacent(a, b int) bool {
	if !t.InBounds(a) || !t.InBounds(b) {
		return false
	}
	for _, d := range AllDirs() {
		if !t.IsEdge(a, d) && t.Neighbor(a, d) == b {
			return true
		}
	}
	return false
}
