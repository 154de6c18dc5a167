package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-match3/internal/match3"
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

func save(t *testing.T, s *Store, level string, outcome match3.Outcome, score int) string {
	t.Helper()
	id, err := s.SaveResult(Result{LevelID: level, Outcome: outcome, Score: score, MovesUsed: 10, ComboMax: 2})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	return id
}

func TestStoreOpenNestedPath(t *testing.T) {
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

func TestSaveResultAssignsRunID(t *testing.T) {
	store := openTestStore(t)

	id := save(t, store, "meadow", match3.OutcomeWon, 900)
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("run id %q is not a UUID: %v", id, err)
	}

	fixed := uuid.NewString()
	got, err := store.SaveResult(Result{RunID: fixed, LevelID: "meadow", Outcome: match3.OutcomeLost, Score: 10})
	if err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if got != fixed {
		t.Errorf("SaveResult() = %s, want %s", got, fixed)
	}

	// run ids are unique
	if _, err := store.SaveResult(Result{RunID: fixed, LevelID: "meadow"}); err == nil {
		t.Error("duplicate run id should fail")
	}
	if _, err := store.SaveResult(Result{Score: 1}); err == nil {
		t.Error("result without level should fail")
	}
}

func TestTopScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "meadow", match3.OutcomeLost, 100)
	save(t, store, "meadow", match3.OutcomeWon, 300)
	save(t, store, "meadow", match3.OutcomeLost, 200)
	save(t, store, "brook", match3.OutcomeWon, 500)

	scores, err := store.TopScores("meadow", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 300 || scores[1].Score != 200 || scores[2].Score != 100 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Outcome != match3.OutcomeWon || scores[0].MovesUsed != 10 || scores[0].ComboMax != 2 {
		t.Errorf("unexpected top row: %+v", scores[0])
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}

	limited, err := store.TopScores("", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(limited) != 2 || limited[0].LevelID != "brook" {
		t.Errorf("TopScores(all, 2) = %v", limited)
	}
}

func TestBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("meadow")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for empty level, got %d", best)
	}

	save(t, store, "meadow", match3.OutcomeLost, 100)
	save(t, store, "meadow", match3.OutcomeWon, 400)

	best, err = store.BestScore("meadow")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 400 {
		t.Errorf("Expected best score of 400, got %d", best)
	}
}

func TestLevelStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.LevelStats("meadow")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if empty.Plays != 0 || empty.WinRate() != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected empty stats: %+v", empty)
	}

	save(t, store, "meadow", match3.OutcomeWon, 300)
	save(t, store, "meadow", match3.OutcomeLost, 100)
	save(t, store, "brook", match3.OutcomeLost, 50)

	st, err := store.LevelStats("meadow")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if st.Plays != 2 || st.Wins != 1 || st.BestScore != 300 || st.AvgScore != 200 {
		t.Errorf("unexpected stats: %+v", st)
	}
	if st.WinRate() != 0.5 {
		t.Errorf("WinRate() = %v, want 0.5", st.WinRate())
	}

	all, err := store.AllLevelStats()
	if err != nil {
		t.Fatalf("AllLevelStats() failed: %v", err)
	}
	if len(all) != 2 || all["brook"].Plays != 1 || all["brook"].Wins != 0 {
		t.Errorf("unexpected all stats: %+v", all)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "meadow", match3.OutcomeWon, 100)
	save(t, store, "brook", match3.OutcomeWon, 300)

	if err := store.ClearScores("meadow"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("meadow", 10); len(scores) != 0 {
		t.Errorf("Expected 0 meadow scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("brook", 10); len(scores) != 1 {
		t.Error("brook scores should not be affected by clearing meadow")
	}

	if err := store.ClearScores(""); err != nil {
		t.Fatalf("ClearScores(all) failed: %v", err)
	}
	if scores, _ := store.TopScores("", 10); len(scores) != 0 {
		t.Errorf("Expected no scores, got %d", len(scores))
	}
}
