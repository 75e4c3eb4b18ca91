package board

import "testing"

func TestTopologyIsEdge(t *testing.T) {
	topo := NewTopology(3, 4) // indices 0..11, 4 per row

	tests := []struct {
		name string
		idx  int
		dir  Dir
		edge bool
	}{
		{"top-left up", 0, DirUp, true},
		{"top-left left", 0, DirLeft, true},
		{"top-left right", 0, DirRight, false},
		{"top-left down", 0, DirDown, false},
		{"top-right right", 3, DirRight, true},
		{"top-right left", 3, DirLeft, false},
		{"row start left", 4, DirLeft, true},
		{"row end right", 7, DirRight, true},
		{"interior left", 5, DirLeft, false},
		{"interior up", 5, DirUp, false},
		{"interior down", 5, DirDown, false},
		{"bottom-left down", 8, DirDown, true},
		{"bottom-right down", 11, DirDown, true},
		{"bottom-right right", 11, DirRight, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := topo.IsEdge(tt.idx, tt.dir); got != tt.edge {
				t.Errorf("IsEdge(%d, %s) = %v, want %v", tt.idx, tt.dir, got, tt.edge)
			}
		})
	}
}

func TestTopologyNeighbor(t *testing.T) {
	topo := NewTopology(3, 4)

	tests := []struct {
		idx  int
		dir  Dir
		want int
	}{
		{5, DirLeft, 4},
		{5, DirRight, 6},
		{5, DirUp, 1},
		{5, DirDown, 9},
		{4, DirRight, 5},
		{8, DirUp, 4},
	}

	for _, tt := range tests {
		if got := topo.Neighbor(tt.idx, tt.dir); got != tt.want {
			t.Errorf("Neighbor(%d, %s) = %d, want %d", tt.idx, tt.dir, got, tt.want)
		}
	}
}

func TestTopologyNeighborPanicsAcrossEdge(t *testing.T) {
	topo := NewTopology(3, 4)

	defer func() {
		if recover() == nil {
			t.Error("Neighbor across the left edge should panic")
		}
	}()

	// Index 4 starts a row; stepping left would wrap into the previous
	// row, which must never be produced silently.
	topo.Neighbor(4, DirLeft)
}

func TestTopologyAdjacent(t *testing.T) {
	topo := NewTopology(3, 4)

	tests := []struct {
		name string
		a, b int
		want bool
	}{
		{"horizontal neighbors", 5, 6, true},
		{"vertical neighbors", 5, 9, true},
		{"same cell", 5, 5, false},
		{"diagonal", 5, 10, false},
		{"row wrap is not adjacency", 3, 4, false},
		{"two apart", 4, 6, false},
		{"out of range", 0, 99, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := topo.Adjacent(tt.a, tt.b); got != tt.want {
				t.Errorf("Adjacent(%d, %d) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Adjacency is symmetric.
			if got := topo.Adjacent(tt.b, tt.a); got != tt.want {
				t.Errorf("Adjacent(%d, %d) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestTopologyIndexRowCol(t *testing.T) {
	topo := NewTopology(7, 7)

	for idx := 0; idx < topo.Size(); idx++ {
		row, col := topo.RowCol(idx)
		if got := topo.Index(row, col); got != idx {
			t.Errorf("Index(RowCol(%d)) = %d, want %d", idx, got, idx)
		}
	}

	if row, col := topo.RowCol(24); row != 3 || col != 3 {
		t.Errorf("RowCol(24) = (%d, %d), want (3, 3)", row, col)
	}
}

func TestNewTopologyInvalidShape(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewTopology with a zero dimension should panic")
		}
	}()
	NewTopology(0, 5)
}
