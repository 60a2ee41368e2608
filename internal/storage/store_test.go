package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveResult(Result{GameID: gameID, Score: score}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if store.Driver() != "sqlite" {
		t.Errorf("Driver() = %q, expected sqlite", store.Driver())
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	save(t, store, "tetris", 700)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 700 {
		t.Errorf("HighScore() = %d after reopen, expected 700", high)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	playedAt := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	id, err := store.SaveResult(Result{
		GameID:    "tetris",
		SessionID: "session-1",
		Player:    "alice",
		Score:     1200,
		Lines:     14,
		Level:     2,
		PlayedAt:  playedAt,
	})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveResult() id = %d, expected positive", id)
	}

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 score, got %d", len(scores))
	}

	e := scores[0]
	if e.ID != id || e.SessionID != "session-1" || e.Player != "alice" {
		t.Errorf("entry identity = %+v", e)
	}
	if e.Score != 1200 || e.Lines != 14 || e.Level != 2 {
		t.Errorf("entry values = %+v", e)
	}
	if !e.CreatedAt.Equal(playedAt) {
		t.Errorf("CreatedAt = %v, expected %v", e.CreatedAt, playedAt)
	}
}

func TestStoreSaveRequiresGameID(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveResult(Result{Score: 10}); err == nil {
		t.Error("expected an error for a result without game id")
	}
}

func TestStoreTopScoresOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "tetris", (i+1)*100)
	}
	save(t, store, "tetris_bag", 9999)

	scores, err := store.TopScores("tetris", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("tetris", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("TopScores(0) returned %d, expected default limit to cover all 5", len(all))
	}
}

func TestStoreTopScoresTieKeepsEarlier(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveResult(Result{GameID: "tetris", SessionID: "a", Score: 300})
	store.SaveResult(Result{GameID: "tetris", SessionID: "b", Score: 300})

	scores, err := store.TopScores("tetris", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].ID != first {
		t.Errorf("tie should go to the earlier game, got %+v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "tetris", 100)
	save(t, store, "tetris", 300)
	save(t, store, "tetris", 200)

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "tetris", 100)
	save(t, store, "tetris", 200)
	save(t, store, "tetris_bag", 300)

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("tetris", 10); len(scores) != 0 {
		t.Errorf("Expected 0 tetris scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("tetris_bag", 10); len(scores) != 1 {
		t.Errorf("tetris_bag scores should not be affected by clearing tetris")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		save(t, store, "tetris", i*10)
	}

	scores, err := store.AllScores("tetris")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	last := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)
	store.SaveResult(Result{GameID: "tetris", Score: 100, Lines: 1, Level: 1, PlayedAt: last.Add(-time.Hour)})
	store.SaveResult(Result{GameID: "tetris", Score: 300, Lines: 12, Level: 2, PlayedAt: last})

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.TotalLines != 13 || stats.BestLevel != 2 {
		t.Errorf("lines/level = %d/%d, expected 13/2", stats.TotalLines, stats.BestLevel)
	}
	if !stats.LastPlayed.Equal(last) {
		t.Errorf("LastPlayed = %v, expected %v", stats.LastPlayed, last)
	}
}

func TestStoreAllGamesStats(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "tetris", 100)
	save(t, store, "tetris", 50)
	save(t, store, "tetris_bag", 70)

	stats, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("Expected stats for 2 games, got %d", len(stats))
	}
	if s := stats["tetris"]; s.GamesCount != 2 || s.HighScore != 100 {
		t.Errorf("tetris stats = %+v", s)
	}
	if s := stats["tetris_bag"]; s.GamesCount != 1 || s.HighScore != 70 {
		t.Errorf("tetris_bag stats = %+v", s)
	}
}
