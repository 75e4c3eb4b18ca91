package gemswap

import (
	"testing"

	"github.com/vovakirdan/tui-gemfall/internal/board"
	"github.com/vovakirdan/tui-gemfall/internal/config"
	"github.com/vovakirdan/tui-gemfall/internal/core"
)

func testConfig(rows, cols int) config.GemswapConfig {
	cfg := config.DefaultGemswapConfig()
	cfg.Board.Rows = rows
	cfg.Board.Cols = cols
	return cfg
}

func runtimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// setRows overwrites the board with a hand-crafted layout.
func setRows(t *testing.T, g *Game, rows ...string) {
	t.Helper()
	if len(rows) != g.topo.Rows || len(rows[0]) != g.topo.Cols {
		t.Fatalf("layout %dx%d does not match board %dx%d", len(rows), len(rows[0]), g.topo.Rows, g.topo.Cols)
	}
	for r, row := range rows {
		for c, ch := range row {
			idx := g.topo.Index(r, c)
			if ch == '.' {
				g.store.WriteTile(idx, board.Tile{Hidden: true})
				continue
			}
			kind, ok := board.ParseKind(string(ch))
			if !ok {
				t.Fatalf("bad kind char %q", ch)
			}
			g.store.WriteTile(idx, board.Tile{Kind: kind})
		}
	}
}

// cycleGen returns a generator that yields the given kinds in order.
func cycleGen(kinds ...board.Kind) board.Generator {
	i := 0
	return func() board.Kind {
		k := kinds[i%len(kinds)]
		i++
		return k
	}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func stepIdle(g *Game, n int) {
	for i := 0; i < n; i++ {
		g.Step(core.NewInputFrame())
	}
}

func TestDeterministicBoard(t *testing.T) {
	cfg := runtimeConfig(12345)

	g1 := New(config.DefaultGemswapConfig())
	g1.Reset(cfg)

	g2 := New(config.DefaultGemswapConfig())
	g2.Reset(cfg)

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if len(snap1.Grid) != len(snap2.Grid) {
		t.Fatalf("Grids differ in size: %d vs %d", len(snap1.Grid), len(snap2.Grid))
	}
	for i := range snap1.Grid {
		if snap1.Grid[i] != snap2.Grid[i] {
			t.Errorf("Same seed should produce same board, row %d: %q vs %q", i, snap1.Grid[i], snap2.Grid[i])
		}
	}
}

func TestNoInitialRuns(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g := New(config.DefaultGemswapConfig())
		g.Reset(runtimeConfig(seed))

		if combo := g.scanBoard(); combo != nil {
			t.Errorf("Seed %d: fresh board should have no runs, found %v", seed, combo.Positions)
		}
	}
}

func TestSwapWithComboScores(t *testing.T) {
	g := New(testConfig(3, 3))
	g.Reset(runtimeConfig(42))

	setRows(t, g,
		"RER",
		"TRP",
		"EAT",
	)
	// Deterministic refill so the cascade cannot chain
	g.engine = board.NewEngine(g.topo, g.store, cycleGen(board.KindRuby, board.KindEmerald, board.KindSapphire))

	// Cursor starts at (1, 1). Pick it, then swap with the cell above.
	g.Step(frame(core.ActionSelect))
	if !g.sel.HasPicked() {
		t.Fatal("First select should pick the cursor cell")
	}
	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionSelect))

	if g.moves != 1 {
		t.Fatalf("Accepted swap should count as a move, got %d", g.moves)
	}
	if !g.busy() {
		t.Fatal("Combo resolution should be pending after a matching swap")
	}

	// Let the cascade run
	stepIdle(g, 10)

	if g.busy() {
		t.Fatal("Board should be quiet after the cascade delay")
	}
	if g.score != 3 {
		t.Errorf("Score = %d, expected 3 cleared gems", g.score)
	}
	if g.largestCombo != 3 {
		t.Errorf("LargestCombo = %d, expected 3", g.largestCombo)
	}

	// Top row was refilled by the cycle generator
	snap := g.Snapshot()
	if snap.Grid[0] != "RES" {
		t.Errorf("Top row after refill = %q, expected %q", snap.Grid[0], "RES")
	}
	if snap.Grid[1] != "TEP" || snap.Grid[2] != "EAT" {
		t.Errorf("Lower rows should be untouched, got %q / %q", snap.Grid[1], snap.Grid[2])
	}
}

func TestFailedSwapReverts(t *testing.T) {
	g := New(testConfig(3, 3))
	g.Reset(runtimeConfig(42))

	setRows(t, g,
		"RES",
		"ETR",
		"SRE",
	)

	// Swap (1,1) with (0,1): no run anywhere
	g.Step(frame(core.ActionSelect))
	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionSelect))

	if g.moves != 0 {
		t.Errorf("Failed swap should not count as a move, got %d", g.moves)
	}
	if g.revertAt == 0 {
		t.Fatal("Failed swap should schedule a revert")
	}

	// The swap stays visible until the revert fires
	snap := g.Snapshot()
	if snap.Grid[0] != "RTS" || snap.Grid[1] != "EER" {
		t.Errorf("Swap should be applied before revert, got %q / %q", snap.Grid[0], snap.Grid[1])
	}

	// Wait out the revert delay
	stepIdle(g, g.cfg.Rules.RevertDelayTicks+1)

	snap = g.Snapshot()
	want := []string{"RES", "ETR", "SRE"}
	for i, row := range want {
		if snap.Grid[i] != row {
			t.Errorf("Row %d after revert = %q, expected %q", i, snap.Grid[i], row)
		}
	}
	if g.busy() {
		t.Error("Nothing should be pending after the revert")
	}
}

func TestSelectSameCellDeselects(t *testing.T) {
	g := New(testConfig(3, 3))
	g.Reset(runtimeConfig(42))

	g.Step(frame(core.ActionSelect))
	if !g.sel.HasPicked() {
		t.Fatal("First select should pick")
	}

	g.Step(frame(core.ActionSelect))
	if g.sel.HasPicked() {
		t.Error("Selecting the picked cell again should deselect")
	}
}

func TestCancelClearsSelection(t *testing.T) {
	g := New(testConfig(3, 3))
	g.Reset(runtimeConfig(42))

	g.Step(frame(core.ActionSelect))
	g.Step(frame(core.ActionCancel))

	if g.sel.HasPicked() {
		t.Error("Cancel should clear the selection")
	}
}

func TestClassicMovesLimit(t *testing.T) {
	cfg := testConfig(3, 3)
	cfg.Rules.MovesLimit = 1

	g := New(cfg)
	g.Reset(runtimeConfig(42))

	setRows(t, g,
		"RER",
		"TRP",
		"EAT",
	)
	g.engine = board.NewEngine(g.topo, g.store, cycleGen(board.KindRuby, board.KindEmerald, board.KindSapphire))

	g.Step(frame(core.ActionSelect))
	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionSelect))

	// Game over waits for the board to come to rest
	if g.gameOver {
		t.Error("Game should not end while the cascade is pending")
	}

	stepIdle(g, 20)

	if !g.gameOver {
		t.Error("Classic game should end when the move budget is spent")
	}
}

func TestZenModeNoGameOver(t *testing.T) {
	cfg := testConfig(3, 3)
	cfg.Rules.MovesLimit = 1 // Ignored in zen mode

	g := NewZen(cfg)
	g.Reset(runtimeConfig(42))

	setRows(t, g,
		"RER",
		"TRP",
		"EAT",
	)
	g.engine = board.NewEngine(g.topo, g.store, cycleGen(board.KindRuby, board.KindEmerald, board.KindSapphire))

	g.Step(frame(core.ActionSelect))
	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionSelect))
	stepIdle(g, 50)

	if g.gameOver {
		t.Error("Zen mode should never end on moves")
	}
	if g.ID() != "gemswap_zen" {
		t.Errorf("ID() = %q, expected gemswap_zen", g.ID())
	}
}

func TestInputIgnoredWhileResolving(t *testing.T) {
	g := New(testConfig(3, 3))
	g.Reset(runtimeConfig(42))

	setRows(t, g,
		"RER",
		"TRP",
		"EAT",
	)
	g.engine = board.NewEngine(g.topo, g.store, cycleGen(board.KindRuby, board.KindEmerald, board.KindSapphire))

	g.Step(frame(core.ActionSelect))
	g.Step(frame(core.ActionUp))
	g.Step(frame(core.ActionSelect))

	// Select while the combo is still resolving must be dropped
	g.Step(frame(core.ActionSelect))
	if g.sel.HasPicked() {
		t.Error("Select should be ignored while the board is busy")
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := New(testConfig(3, 3))
	g.Reset(runtimeConfig(42))

	g.Step(frame(core.ActionPause))
	if !g.paused {
		t.Fatal("Pause action should pause the game")
	}

	// Cursor must not move while paused
	row, col := g.cursorRow, g.cursorCol
	g.Step(frame(core.ActionLeft))
	if g.cursorRow != row || g.cursorCol != col {
		t.Error("Cursor should not move while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.paused {
		t.Error("Pause action should unpause the game")
	}
}

func TestSnapshot(t *testing.T) {
	g := New(config.DefaultGemswapConfig())
	g.Reset(runtimeConfig(42))

	snap := g.Snapshot()

	if snap.Mode != "classic" {
		t.Errorf("Snapshot Mode = %s, want classic", snap.Mode)
	}
	if snap.State != StatePlaying {
		t.Errorf("Snapshot State = %s, want playing", snap.State)
	}
	if len(snap.Grid) != 9 {
		t.Errorf("Snapshot Grid rows = %d, want 9", len(snap.Grid))
	}
	for i, row := range snap.Grid {
		if len([]rune(row)) != 9 {
			t.Errorf("Snapshot Grid row %d width = %d, want 9", i, len([]rune(row)))
		}
	}
}
