package board

import "strings"

// Kind identifies a gem kind. The engine only compares kinds for
// equality; their meaning (color, glyph) belongs to the presentation
// layer.
type Kind uint8

const (
	KindRuby Kind = iota
	KindEmerald
	KindSapphire
	KindTopaz
	KindAmethyst
	KindPearl
	KindCount // Sentinel value for iteration
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindRuby:
		return "ruby"
	case KindEmerald:
		return "emerald"
	case KindSapphire:
		return "sapphire"
	case KindTopaz:
		return "topaz"
	case KindAmethyst:
		return "amethyst"
	case KindPearl:
		return "pearl"
	default:
		return "unknown"
	}
}

// Char returns a single character representation for ASCII rendering.
func (k Kind) Char() rune {
	switch k {
	case KindRuby:
		return 'R'
	case KindEmerald:
		return 'E'
	case KindSapphire:
		return 'S'
	case KindTopaz:
		return 'T'
	case KindAmethyst:
		return 'A'
	case KindPearl:
		return 'P'
	default:
		return '?'
	}
}

// ParseKind converts a string to a Kind.
// Returns KindRuby and false if the string is not recognized.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(s) {
	case "ruby", "r":
		return KindRuby, true
	case "emerald", "e":
		return KindEmerald, true
	case "sapphire", "s":
		return KindSapphire, true
	case "topaz", "t":
		return KindTopaz, true
	case "amethyst", "a":
		return KindAmethyst, true
	case "pearl", "p":
		return KindPearl, true
	default:
		return KindRuby, false
	}
}

// Tile is the content of one grid slot. Hidden marks a cleared,
// not-yet-refilled slot; hidden tiles never participate in matches.
type Tile struct {
	Kind   Kind
	Hidden bool
}

// Store is the grid storage capability the engine consumes. The engine
// assumes nothing about the backing representation beyond flat
// row-major indexing.
type Store interface {
	ReadTile(idx int) Tile
	WriteTile(idx int, t Tile)
}

// Generator supplies a kind for a new or refilled slot. The engine is
// agnostic to its distribution.
type Generator func() Kind

// SliceStore is the default Store backed by a flat tile slice.
type SliceStore struct {
	tiles []Tile
}

// NewSliceStore creates a store with n slots, all hidden until filled.
func NewSliceStore(n int) *SliceStore {
	tiles := make([]Tile, n)
	for i := range tiles {
		tiles[i].Hidden = true
	}
	return &SliceStore{tiles: tiles}
}

// ReadTile returns the tile at idx.
func (s *SliceStore) ReadTile(idx int) Tile {
	return s.tiles[idx]
}

// WriteTile replaces the tile at idx.
func (s *SliceStore) WriteTile(idx int, t Tile) {
	s.tiles[idx] = t
}

// Len returns the number of slots.
func (s *SliceStore) Len() int {
	return len(s.tiles)
}

// Snapshot returns a copy of all tiles, in index order.
func (s *SliceStore) Snapshot() []Tile {
	out := make([]Tile, len(s.tiles))
	copy(out, s.tiles)
	return out
}
