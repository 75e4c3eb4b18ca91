package gemswap

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateResolving   GameStateType = "resolving"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Mode         string // "classic" or "zen"
	Score        int
	Moves        int
	LargestCombo int
	Grid         []string // One string per row, '.' for hidden slots
	State        GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.busy():
		state = StateResolving
	}

	grid := make([]string, g.topo.Rows)
	for row := 0; row < g.topo.Rows; row++ {
		line := make([]rune, g.topo.Cols)
		for col := 0; col < g.topo.Cols; col++ {
			tile := g.store.ReadTile(g.topo.Index(row, col))
			if tile.Hidden {
				line[col] = '.'
			} else {
				line[col] = tile.Kind.Char()
			}
		}
		grid[row] = string(line)
	}

	return Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		Score:        g.score,
		Moves:        g.moves,
		LargestCombo: g.largestCombo,
		Grid:         grid,
		State:        state,
	}
}
