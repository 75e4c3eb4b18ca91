// Package gemswap implements the gem-matching puzzle game.
// The player swaps adjacent gems to line up runs of three or more
// of the same kind; matched gems clear, the column settles, and new
// gems fall in from the top.
package gemswap

import (
	"math/rand"

	"github.com/vovakirdan/tui-gemfall/internal/board"
	"github.com/vovakirdan/tui-gemfall/internal/config"
	"github.com/vovakirdan/tui-gemfall/internal/core"
	"github.com/vovakirdan/tui-gemfall/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeZen     Mode = "zen"
)

// Game implements the gem swap puzzle game.
type Game struct {
	mode Mode
	cfg  config.GemswapConfig
	rng  *rand.Rand
	tick uint64

	topo       board.Topology
	store      *board.SliceStore
	engine     *board.Engine
	sel        board.Selection
	difficulty *config.DifficultyManager
	kinds      int // Number of gem kinds in play

	cursorRow int
	cursorCol int

	score        int // Gems cleared
	moves        int // Accepted swaps
	movesLimit   int // 0 = unlimited
	largestCombo int
	chainDepth   int // Cascade chain length of the current move

	// Failed swap scheduled to revert
	revertAt uint64 // 0 = nothing pending
	revertA  int
	revertB  int

	// Combo scheduled to resolve
	resolveAt    uint64 // 0 = nothing pending
	pendingCombo *board.Combo

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver        bool
	paused          bool
	tooSmall        bool
	selectProcessed bool // Prevent multiple selects per tick
}

// New creates a new classic mode game with the given configuration.
func New(cfg config.GemswapConfig) *Game {
	return &Game{
		mode: ModeClassic,
		cfg:  cfg,
	}
}

// NewZen creates a new zen mode game: no move limit, no game over.
func NewZen(cfg config.GemswapConfig) *Game {
	return &Game{
		mode: ModeZen,
		cfg:  cfg,
	}
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// loadConfig resolves the effective config from the CLI-set path and preset.
func loadConfig() config.GemswapConfig {
	cfg, err := config.LoadGemswap(configPath)
	if err != nil {
		cfg = config.DefaultGemswapConfig()
	}
	if difficultyPreset != "" {
		config.ApplyGemswapPreset(&cfg, difficultyPreset)
	}
	return cfg
}

func init() {
	registry.Register("gemswap", func() registry.Game {
		return New(loadConfig())
	})
	registry.Register("gemswap_zen", func() registry.Game {
		return NewZen(loadConfig())
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "gemswap_zen"
	}
	return "gemswap"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Gem Swap (Zen)"
	}
	return "Gem Swap"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.moves = 0
	g.largestCombo = 0
	g.chainDepth = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.paused = false
	g.selectProcessed = false
	g.revertAt = 0
	g.resolveAt = 0
	g.pendingCombo = nil
	g.sel.Clear()

	rows := g.cfg.Board.Rows
	cols := g.cfg.Board.Cols
	if rows < board.MinRunLen {
		rows = board.MinRunLen
	}
	if cols < 2 {
		cols = 2
	}

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.kinds = g.kindsInPlay()
	g.movesLimit = 0
	if g.mode == ModeClassic {
		g.movesLimit = g.cfg.Rules.MovesLimit
	}

	g.topo = board.NewTopology(rows, cols)
	g.store = board.NewSliceStore(g.topo.Size())
	g.engine = board.NewEngine(g.topo, g.store, g.rollKind)
	g.cursorRow = rows / 2
	g.cursorCol = cols / 2

	g.fillBoard()
	g.checkScreenSize()
}

// kindsInPlay returns the gem variety at the current score. With
// progression enabled, new gems draw from more kinds as the score grows.
func (g *Game) kindsInPlay() int {
	kinds := g.cfg.Board.Kinds
	if g.difficulty.IsEnabled() {
		kinds = g.difficulty.Kinds(g.score)
	}
	return core.Clamp(kinds, board.MinRunLen, int(board.KindCount))
}

// rollKind picks a random gem kind from the kinds currently in play.
func (g *Game) rollKind() board.Kind {
	return board.Kind(g.rng.Intn(g.kinds))
}

// fillBoard populates the grid so that no run exists at the start.
// Each slot avoids completing a run with its two left and two upper
// neighbors, which already hold their final kinds.
func (g *Game) fillBoard() {
	for idx := 0; idx < g.topo.Size(); idx++ {
		k := g.rollKind()
		for g.wouldStartWithRun(idx, k) {
			k = board.Kind((int(k) + 1) % g.kinds)
		}
		g.store.WriteTile(idx, board.Tile{Kind: k})
	}
}

// wouldStartWithRun reports whether placing kind k at idx completes a
// run of MinRunLen with already-placed tiles to the left or above.
func (g *Game) wouldStartWithRun(idx int, k board.Kind) bool {
	row, col := g.topo.RowCol(idx)
	if col >= 2 {
		a := g.store.ReadTile(g.topo.Index(row, col-1))
		b := g.store.ReadTile(g.topo.Index(row, col-2))
		if a.Kind == k && b.Kind == k {
			return true
		}
	}
	if row >= 2 {
		a := g.store.ReadTile(g.topo.Index(row-1, col))
		b := g.store.ReadTile(g.topo.Index(row-2, col))
		if a.Kind == k && b.Kind == k {
			return true
		}
	}
	return false
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	minW := g.topo.Cols*cellWidth + 1
	minH := g.topo.Rows*cellHeight + 1 + 4 // board + HUD
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// busy reports whether a revert or cascade resolution is in flight.
// Selection input is ignored while the board is animating.
func (g *Game) busy() bool {
	return g.revertAt != 0 || g.resolveAt != 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.selectProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.gameOver {
		// Will be reset by platform
		return core.StepResult{State: g.State()}
	}

	// Run scheduled board work even after the last move
	g.runPending()

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Cursor movement
	switch {
	case in.Has(core.ActionUp):
		g.cursorRow = core.Clamp(g.cursorRow-1, 0, g.topo.Rows-1)
	case in.Has(core.ActionDown):
		g.cursorRow = core.Clamp(g.cursorRow+1, 0, g.topo.Rows-1)
	case in.Has(core.ActionLeft):
		g.cursorCol = core.Clamp(g.cursorCol-1, 0, g.topo.Cols-1)
	case in.Has(core.ActionRight):
		g.cursorCol = core.Clamp(g.cursorCol+1, 0, g.topo.Cols-1)
	}

	if in.Has(core.ActionCancel) {
		g.sel.Clear()
	}

	if in.Has(core.ActionSelect) && !g.selectProcessed && !g.busy() {
		g.handleSelect()
		g.selectProcessed = true
	}

	g.checkGameOver()

	return core.StepResult{State: g.State()}
}

// handleSelect clicks the cursor position; when the click completes a
// pair, the swap is attempted.
func (g *Game) handleSelect() {
	idx := g.topo.Index(g.cursorRow, g.cursorCol)
	if !g.sel.Click(g.topo, idx) {
		return
	}

	a := g.sel.Picked()
	b := g.sel.Target()
	g.sel.Clear()

	res, err := g.engine.AttemptSwap(a, b)
	if err != nil {
		// Cursor positions are always in range
		return
	}
	if !res.Accepted {
		return
	}

	if res.Combo == nil {
		// Show the failed swap briefly, then revert
		g.revertA = a
		g.revertB = b
		g.revertAt = g.tick + uint64(g.cfg.Rules.RevertDelayTicks)
		return
	}

	g.moves++
	g.chainDepth = 0
	g.scheduleResolve(res.Combo)
}

// scheduleResolve queues a combo for resolution after the cascade delay.
func (g *Game) scheduleResolve(c *board.Combo) {
	g.pendingCombo = c
	g.resolveAt = g.tick + uint64(g.cfg.Rules.CascadeTicks)
	if c.Len() > g.largestCombo {
		g.largestCombo = c.Len()
	}
}

// runPending executes scheduled reverts and combo resolutions.
func (g *Game) runPending() {
	if g.revertAt != 0 && g.tick >= g.revertAt {
		g.revertAt = 0
		// Positions were captured when the swap failed
		g.engine.RevertSwap(g.revertA, g.revertB)
	}

	if g.resolveAt != 0 && g.tick >= g.resolveAt {
		g.resolveAt = 0
		combo := g.pendingCombo
		g.pendingCombo = nil

		g.score += combo.Len()
		g.kinds = g.kindsInPlay()
		g.engine.ResolveCombo(combo)
		g.engine.Refill()

		// Refilled gems can line up new runs; chain them
		if next := g.scanBoard(); next != nil {
			g.chainDepth++
			g.scheduleResolve(next)
		}
	}
}

// scanBoard detects all current runs anywhere on the board and merges
// them into a single combo. Returns nil when the board is quiet.
func (g *Game) scanBoard() *board.Combo {
	var acc *board.Combo
	for idx := 0; idx < g.topo.Size(); idx++ {
		if acc != nil && acc.Contains(idx) {
			continue
		}
		if m := board.DetectAround(g.store, g.topo, idx); m != nil {
			acc = mergeCombo(acc, m)
		}
	}
	return acc
}

// mergeCombo folds a match into an accumulated combo.
func mergeCombo(acc *board.Combo, m *board.MatchInfo) *board.Combo {
	merged := board.ResolveCombo(m, nil)
	if acc == nil {
		return merged
	}
	// Union via a synthetic match carrying both position lists
	all := &board.MatchInfo{AlongX: acc.Positions, AlongY: merged.Positions}
	return board.ResolveCombo(all, nil)
}

// checkGameOver ends a classic game when the move budget is spent and
// the board has come to rest.
func (g *Game) checkGameOver() {
	if g.mode != ModeClassic || g.movesLimit <= 0 {
		return
	}
	if g.moves >= g.movesLimit && !g.busy() {
		g.gameOver = true
	}
}

// Moves returns the number of accepted swaps so far.
func (g *Game) Moves() int {
	return g.moves
}

// LargestCombo returns the largest single combo by gem count.
func (g *Game) LargestCombo() int {
	return g.largestCombo
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
