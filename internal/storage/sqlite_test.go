package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func save(t *testing.T, store *Store, gameID, levelID string, score int) {
	t.Helper()
	if _, err := store.SaveScore(ScoreEntry{GameID: gameID, LevelID: levelID, Score: score}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

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
	store := openTestStore(t)

	save(t, store, "bomber", "01-intro", 100)
	save(t, store, "bomber", "02-rooms", 50)
	save(t, store, "bomber", "03-maze", 200)
	save(t, store, "bomber_survival", "90-arena", 500)

	scores, err := store.TopScores("bomber", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	want := []int{200, 100, 50}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d].Score = %d, expected %d", i, scores[i].Score, w)
		}
	}
	if scores[0].LevelID != "03-maze" {
		t.Errorf("scores[0].LevelID = %q, expected 03-maze", scores[0].LevelID)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	survival, err := store.TopScores("bomber_survival", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(survival) != 1 {
		t.Errorf("Expected 1 survival score, got %d", len(survival))
	}
}

func TestStoreRunIDs(t *testing.T) {
	store := openTestStore(t)

	runID := NewRunID()
	if _, err := uuid.Parse(runID); err != nil {
		t.Fatalf("NewRunID() = %q is not a UUID: %v", runID, err)
	}

	if _, err := store.SaveScore(ScoreEntry{RunID: runID, GameID: "bomber", Score: 10}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(ScoreEntry{RunID: runID, GameID: "bomber", Score: 20}); err == nil {
		t.Error("SaveScore() with a duplicate run ID should fail")
	}

	save(t, store, "bomber", "", 30)
	scores, err := store.TopScores("bomber", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("Expected 2 scores, got %d", len(scores))
	}
	if scores[1].RunID != runID {
		t.Errorf("RunID = %q, expected %q", scores[1].RunID, runID)
	}
	if scores[0].RunID == "" || scores[0].RunID == runID {
		t.Errorf("generated RunID = %q, expected a fresh ID", scores[0].RunID)
	}
}

func TestStoreSaveRequiresGame(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(ScoreEntry{Score: 10}); err == nil {
		t.Error("SaveScore() without a game ID should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "bomber", "", (i+1)*100)
	}

	scores, err := store.TopScores("bomber", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("bomber", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("TopScores(0) returned %d, expected default limit to cover all 5", len(all))
	}
}

func TestStoreTopScoresForLevel(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "bomber", "02-rooms", 300)
	save(t, store, "bomber", "01-intro", 900)
	save(t, store, "bomber", "02-rooms", 100)
	save(t, store, "bomber_survival", "02-rooms", 200)

	scores, err := store.TopScoresForLevel("02-rooms", 10)
	if err != nil {
		t.Fatalf("TopScoresForLevel() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	want := []int{300, 200, 100}
	for i, w := range want {
		if scores[i].Score != w {
			t.Errorf("scores[%d].Score = %d, expected %d", i, scores[i].Score, w)
		}
	}

	none, err := store.TopScoresForLevel("missing", 10)
	if err != nil {
		t.Fatalf("TopScoresForLevel() failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("Expected no scores for unknown level, got %d", len(none))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("bomber")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	save(t, store, "bomber", "", 100)
	save(t, store, "bomber", "", 300)
	save(t, store, "bomber", "", 200)

	high, err = store.HighScore("bomber")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreCount(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 4; i++ {
		save(t, store, "bomber", "", i*10)
	}
	save(t, store, "bomber_survival", "", 10)

	tests := []struct {
		game string
		want int
	}{
		{"bomber", 4},
		{"bomber_survival", 1},
		{"unknown", 0},
	}
	for _, tt := range tests {
		got, err := store.Count(tt.game)
		if err != nil {
			t.Fatalf("Count(%q) failed: %v", tt.game, err)
		}
		if got != tt.want {
			t.Errorf("Count(%q) = %d, expected %d", tt.game, got, tt.want)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "bomber", "", 100)
	save(t, store, "bomber", "", 200)
	save(t, store, "bomber_survival", "", 300)

	if err := store.ClearScores("bomber"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	campaign, _ := store.TopScores("bomber", 10)
	if len(campaign) != 0 {
		t.Errorf("Expected 0 campaign scores after clear, got %d", len(campaign))
	}

	survival, _ := store.TopScores("bomber_survival", 10)
	if len(survival) != 1 {
		t.Errorf("Survival scores should not be affected by clearing campaign")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "bomber", "", 100)
	save(t, store, "bomber", "", 300)

	stats, err := store.GetGameStats("bomber")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("GetGameStats() = %+v, expected 2 games, high 300, avg 200", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	empty, err := store.GetGameStats("unknown")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("GetGameStats(unknown) = %+v, expected zero stats", empty)
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
