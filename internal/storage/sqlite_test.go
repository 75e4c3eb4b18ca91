package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some results
	_, err = store.SaveResult(GameResult{GameID: "gemswap", Score: 100, Moves: 30, LargestCombo: 4, Duration: 120})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	_, err = store.SaveResult(GameResult{GameID: "gemswap", Score: 50, Moves: 30, LargestCombo: 3, Duration: 90})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	_, err = store.SaveResult(GameResult{GameID: "gemswap", Score: 200, Moves: 30, LargestCombo: 7, Duration: 200})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	// Different mode
	_, err = store.SaveResult(GameResult{GameID: "gemswap_zen", Score: 500, Moves: 120, LargestCombo: 6, Duration: 600})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	// Retrieve top results for classic mode
	results, err := store.TopResults("gemswap", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("Expected 3 results, got %d", len(results))
	}

	// Should be sorted descending
	if results[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", results[0].Score)
	}
	if results[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", results[1].Score)
	}
	if results[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", results[2].Score)
	}

	// Extra columns should round-trip
	if results[0].LargestCombo != 7 || results[0].Duration != 200 {
		t.Errorf("Result row did not round-trip: %+v", results[0])
	}

	// Retrieve top results for zen mode
	zenResults, err := store.TopResults("gemswap_zen", 10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(zenResults) != 1 {
		t.Errorf("Expected 1 zen result, got %d", len(zenResults))
	}
}

func TestStoreTopResultsLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 results
	for i := 0; i < 5; i++ {
		store.SaveResult(GameResult{GameID: "test", Score: (i + 1) * 100})
	}

	// Request only top 3
	results, err := store.TopResults("test", 3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}

	if len(results) != 3 {
		t.Errorf("Expected 3 results with limit, got %d", len(results))
	}

	// Should be 500, 400, 300 (top 3)
	if results[0].Score != 500 || results[1].Score != 400 || results[2].Score != 300 {
		t.Errorf("Results not in expected order: %v", results)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No results yet
	high, err := store.HighScore("gemswap")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	// Add results
	store.SaveResult(GameResult{GameID: "gemswap", Score: 100})
	store.SaveResult(GameResult{GameID: "gemswap", Score: 300})
	store.SaveResult(GameResult{GameID: "gemswap", Score: 200})

	high, err = store.HighScore("gemswap")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearResults(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult(GameResult{GameID: "gemswap", Score: 100})
	store.SaveResult(GameResult{GameID: "gemswap", Score: 200})
	store.SaveResult(GameResult{GameID: "gemswap_zen", Score: 300})

	// Clear only classic mode results
	err = store.ClearResults("gemswap")
	if err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}

	// Classic mode should be empty
	classic, _ := store.TopResults("gemswap", 10)
	if len(classic) != 0 {
		t.Errorf("Expected 0 classic results after clear, got %d", len(classic))
	}

	// Zen mode should still have results
	zen, _ := store.TopResults("gemswap_zen", 10)
	if len(zen) != 1 {
		t.Errorf("Zen results should not be affected by clearing classic mode")
	}
}

func TestStoreAllResults(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many results
	for i := 0; i < 20; i++ {
		store.SaveResult(GameResult{GameID: "test", Score: i * 10})
	}

	results, err := store.AllResults("test")
	if err != nil {
		t.Fatalf("AllResults() failed: %v", err)
	}

	if len(results) != 20 {
		t.Errorf("Expected 20 results, got %d", len(results))
	}
}

func TestStoreGameStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveResult(GameResult{GameID: "gemswap", Score: 100, LargestCombo: 3})
	store.SaveResult(GameResult{GameID: "gemswap", Score: 300, LargestCombo: 8})

	stats, err := store.GetGameStats("gemswap")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, expected 300", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, expected 400", stats.TotalScore)
	}
	if stats.LargestCombo != 8 {
		t.Errorf("LargestCombo = %d, expected 8", stats.LargestCombo)
	}

	// Aggregated view should include the mode
	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if _, ok := all["gemswap"]; !ok {
		t.Error("GetAllGamesStats() should include gemswap")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
