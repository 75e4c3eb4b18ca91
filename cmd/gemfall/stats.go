package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gemfall/internal/registry"
	"github.com/vovakirdan/tui-gemfall/internal/storage"
)

var flagClearResults bool

var statsCmd = &cobra.Command{
	Use:   "stats <mode>",
	Short: "Show results and statistics for a mode",
	Long: `Display the top 10 results and aggregate statistics for the specified mode.

Examples:
  gemfall stats gemswap
  gemfall stats gemswap_zen
  gemfall stats gemswap --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagClearResults, "clear", false, "Delete all recorded results for this mode")
}

func runStats(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gemfall list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearResults {
		if err := store.ClearResults(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared all results for %s.\n", title)
		return
	}

	// Get top results
	results, err := store.TopResults(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	// Display results
	fmt.Printf("Results - %s\n", title)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No results recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'gemfall play %s' to set the first high score!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Gems", "Moves", "Combo", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "----", "-----", "-----", "----")

	// Print results
	for i, entry := range results {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %s\n", i+1, entry.Score, entry.Moves, entry.LargestCombo, dateStr)
	}

	// Show aggregate statistics
	stats, err := store.GetGameStats(gameID)
	if err == nil && stats != nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games played: %d\n", stats.GamesCount)
		fmt.Printf("Best:         %d gems\n", stats.HighScore)
		fmt.Printf("Average:      %.1f gems\n", stats.AvgScore)
		fmt.Printf("Best combo:   %d\n", stats.LargestCombo)
		fmt.Printf("Last played:  %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}
