package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/huematch/internal/core"
	"github.com/vovakirdan/huematch/internal/puzzle"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{10, 5, 20} {
		if _, err := store.SaveScore("time_trial", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("infinite", 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("time_trial", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	expected := []int{20, 10, 5}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
		if scores[i].GameID != "time_trial" {
			t.Errorf("scores[%d].GameID = %q, expected time_trial", i, scores[i].GameID)
		}
	}

	limited, err := store.TopScores("time_trial", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("Expected 2 scores with limit, got %d", len(limited))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("infinite")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 for empty mode, got %d", high)
	}

	store.SaveScore("infinite", 7)
	store.SaveScore("infinite", 12)

	high, err = store.HighScore("infinite")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("Expected high score 12, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("infinite", 3)
	store.SaveScore("time_trial", 4)

	if err := store.ClearScores("infinite"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("infinite", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("time_trial", 10); len(scores) != 1 {
		t.Errorf("Clearing one mode should not affect another, got %d scores", len(scores))
	}
}

func sampleRounds() []puzzle.LevelHistoryEntry {
	return []puzzle.LevelHistoryEntry{
		{
			Click:        core.Point{X: 120.5, Y: 80.25},
			CorrectIndex: 1,
			TileSize:     140,
			Scored:       true,
			Tiles: []puzzle.TileRecord{
				{Color: core.RGB(0.1, 0.2, 0.3), Pos: core.Point{X: 50, Y: 50}},
				{Color: core.RGB(0.1375, 0.2375, 0.3375), Pos: core.Point{X: 200, Y: 50}, Correct: true},
			},
		},
		{
			Click:        core.Point{X: 10, Y: 10},
			CorrectIndex: 0,
			TileSize:     140,
			Scored:       false,
			Tiles: []puzzle.TileRecord{
				{Color: core.RGB(0.9, 0.8, 1.04), Pos: core.Point{X: 60, Y: 70}, Correct: true},
			},
		},
	}
}

func TestStoreSaveGameRoundTrip(t *testing.T) {
	store := openTestStore(t)
	rounds := sampleRounds()

	id, err := store.SaveGame(GameRecord{
		Mode:         "time_trial",
		Score:        1,
		LevelsPlayed: 2,
		MaxStreak:    1,
		TotalTime:    42.5,
		Player:       "alice",
	}, rounds)
	if err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}
	if len(id) != 36 {
		t.Errorf("SaveGame() id = %q, expected a UUID", id)
	}

	game, err := store.GameByID(id)
	if err != nil {
		t.Fatalf("GameByID() failed: %v", err)
	}
	if game.Mode != "time_trial" || game.Player != "alice" || game.TotalTime != 42.5 {
		t.Errorf("GameByID() = %+v", game)
	}

	got, err := store.GameRounds(id)
	if err != nil {
		t.Fatalf("GameRounds() failed: %v", err)
	}
	if len(got) != len(rounds) {
		t.Fatalf("GameRounds() returned %d rounds, expected %d", len(got), len(rounds))
	}
	for i := range rounds {
		want, have := rounds[i], got[i]
		if have.Click != want.Click || have.CorrectIndex != want.CorrectIndex ||
			have.Scored != want.Scored || have.TileSize != want.TileSize {
			t.Errorf("round %d = %+v, expected %+v", i, have, want)
		}
		if len(have.Tiles) != len(want.Tiles) {
			t.Fatalf("round %d has %d tiles, expected %d", i, len(have.Tiles), len(want.Tiles))
		}
		for j := range want.Tiles {
			if !have.Tiles[j].Color.Equal(want.Tiles[j].Color) ||
				have.Tiles[j].Pos != want.Tiles[j].Pos ||
				have.Tiles[j].Correct != want.Tiles[j].Correct {
				t.Errorf("round %d tile %d = %+v, expected %+v", i, j, have.Tiles[j], want.Tiles[j])
			}
		}
	}
}

func TestStoreGameByIDMissing(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GameByID("does-not-exist")
	if !errors.Is(err, ErrGameNotFound) {
		t.Errorf("GameByID() error = %v, expected ErrGameNotFound", err)
	}
}

func TestStoreRecentGamesAndStats(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{3, 9, 6} {
		rec := GameRecord{Mode: "against_the_clock", Score: score, LevelsPlayed: score + 1, MaxStreak: i + 1, TotalTime: 60}
		if _, err := store.SaveGame(rec, nil); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}
	if _, err := store.SaveGame(GameRecord{Mode: "infinite", Score: 1}, nil); err != nil {
		t.Fatalf("SaveGame() failed: %v", err)
	}

	recent, err := store.RecentGames(3)
	if err != nil {
		t.Fatalf("RecentGames() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("RecentGames(3) returned %d games", len(recent))
	}
	if recent[0].Mode != "infinite" {
		t.Errorf("newest game mode = %q, expected infinite", recent[0].Mode)
	}

	stats, err := store.GetModeStats("against_the_clock")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.HighScore != 9 || stats.BestStreak != 3 {
		t.Errorf("GetModeStats() = %+v", stats)
	}
	if stats.AvgScore != 6 {
		t.Errorf("AvgScore = %v, expected 6", stats.AvgScore)
	}
	if stats.TotalTime != 180 {
		t.Errorf("TotalTime = %v, expected 180", stats.TotalTime)
	}

	empty, err := store.GetModeStats("time_trial")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("GetModeStats() for unplayed mode = %+v", empty)
	}
}

func TestRecordFromSummary(t *testing.T) {
	rec := RecordFromSummary(puzzle.Summary{
		Mode:         puzzle.ModeTimeTrial,
		LevelsPlayed: 8,
		TotalScore:   6,
		MaxStreak:    4,
		TotalTime:    51,
	}, "bob")

	if rec.Mode != "time_trial" || rec.Score != 6 || rec.LevelsPlayed != 8 || rec.MaxStreak != 4 || rec.Player != "bob" {
		t.Errorf("RecordFromSummary() = %+v", rec)
	}
}
