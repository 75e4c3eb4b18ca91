// gemfall is a TUI gem-matching puzzle for the terminal.
//
// Usage:
//
//	gemfall list              - List available game modes
//	gemfall play <mode>       - Play a mode
//	gemfall menu              - Start menu to pick modes interactively
//	gemfall serve             - Start SSH server for remote play
//	gemfall stats <mode>      - Show results and statistics for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.gemfall/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/tui-gemfall/internal/games/gemswap"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gemfall",
	Short: "Gemfall - Match gems in your terminal",
	Long: `Gemfall is a terminal-based tile-matching puzzle. Swap adjacent gems
to line up three or more of a kind, chain cascades for big clears.

Available commands:
  list     - Show all available game modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  stats    - View results and statistics

Examples:
  gemfall list
  gemfall play gemswap
  gemfall menu
  gemfall serve --ssh :2222
  gemfall stats gemswap`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.gemfall/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}
