package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gemfall/internal/board"
	"github.com/vovakirdan/tui-gemfall/internal/config"
)

var flagDemoMoves int

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a headless autoplay demo",
	Long: `Play a number of moves automatically without a terminal UI.

The demo fills a board, searches for swaps that produce a match,
applies them and resolves the resulting cascades, logging each step.
Useful for smoke-testing the board engine and for reproducing boards
with a fixed seed.

Examples:
  gemfall demo
  gemfall demo --moves 50
  gemfall demo --seed 42 --moves 10`,
	Run: runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&flagDemoMoves, "moves", 20, "Number of moves to play")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gemfall-demo",
	})

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	cfg, err := config.LoadGemswap(flagConfig)
	if err != nil {
		cfg = config.DefaultGemswapConfig()
	}
	kinds := cfg.Board.Kinds
	if kinds < board.MinRunLen {
		kinds = board.MinRunLen
	}
	if kinds > int(board.KindCount) {
		kinds = int(board.KindCount)
	}

	topo := board.NewTopology(cfg.Board.Rows, cfg.Board.Cols)
	store := board.NewSliceStore(topo.Size())
	engine := board.NewEngine(topo, store, func() board.Kind {
		return board.Kind(rng.Intn(kinds))
	})

	logger.Info("starting demo", "seed", seed, "rows", topo.Rows, "cols", topo.Cols, "kinds", kinds)

	engine.Fill()
	cleared := settleBoard(engine, topo, store)
	if cleared > 0 {
		logger.Info("cleared initial runs", "gems", cleared)
	}

	total := 0
	for move := 1; move <= flagDemoMoves; move++ {
		a, b, combo := findScoringSwap(engine, topo, rng)
		if combo == nil {
			logger.Warn("no scoring swap available, stopping", "move", move)
			break
		}

		gems := combo.Len()
		engine.ResolveCombo(combo)
		engine.Refill()
		gems += settleBoard(engine, topo, store)
		total += gems

		ar, ac := topo.RowCol(a)
		br, bc := topo.RowCol(b)
		logger.Info("move", "n", move,
			"swap", fmt.Sprintf("(%d,%d)<->(%d,%d)", ar, ac, br, bc),
			"gems", gems, "total", total)
	}

	logger.Info("demo finished", "total", total)
	fmt.Println()
	fmt.Println(renderGrid(store, topo))
}

// findScoringSwap tries adjacent swaps in random order until one
// produces a combo. Swaps that do not match are reverted.
func findScoringSwap(engine *board.Engine, topo board.Topology, rng *rand.Rand) (int, int, *board.Combo) {
	order := rng.Perm(topo.Size())
	for _, a := range order {
		for _, d := range []board.Dir{board.DirRight, board.DirDown} {
			if topo.IsEdge(a, d) {
				continue
			}
			b := topo.Neighbor(a, d)
			res, err := engine.AttemptSwap(a, b)
			if err != nil || !res.Accepted {
				continue
			}
			if res.Combo == nil {
				engine.RevertSwap(a, b)
				continue
			}
			return a, b, res.Combo
		}
	}
	return 0, 0, nil
}

// settleBoard resolves every run on the board, refilling after each
// resolution, until the board is quiet. Returns the gems cleared.
func settleBoard(engine *board.Engine, topo board.Topology, store board.Store) int {
	cleared := 0
	for {
		var combo *board.Combo
		for idx := 0; idx < topo.Size(); idx++ {
			if m := board.DetectAround(store, topo, idx); m != nil {
				combo = board.ResolveCombo(m, nil)
				break
			}
		}
		if combo == nil {
			return cleared
		}
		cleared += combo.Len()
		engine.ResolveCombo(combo)
		engine.Refill()
	}
}

// renderGrid returns an ASCII dump of the board, one row per line.
func renderGrid(store board.Store, topo board.Topology) string {
	var sb strings.Builder
	for row := 0; row < topo.Rows; row++ {
		for col := 0; col < topo.Cols; col++ {
			t := store.ReadTile(topo.Index(row, col))
			if t.Hidden {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(t.Kind.Char())
			}
			if col < topo.Cols-1 {
				sb.WriteByte(' ')
			}
		}
		if row < topo.Rows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
