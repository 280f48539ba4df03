package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func testEntry(variant string, victory bool, turns, kills int) RunEntry {
	return RunEntry{
		Variant:  variant,
		Rows:     10,
		Cols:     10,
		Monsters: 8,
		Seed:     42,
		Victory:  victory,
		Turns:    turns,
		Kills:    kills,
		Level:    kills + 1,
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
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, e := range []RunEntry{
		testEntry("classic", true, 80, 8),
		testEntry("classic", false, 12, 2),
		testEntry("classic", true, 60, 8),
		testEntry("scout", true, 200, 8),
	} {
		if _, err := store.SaveRun(e); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	best, err := store.BestRuns("classic", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("expected 3 classic runs, got %d", len(best))
	}

	// Ranked by kills desc, then fewest turns
	if best[0].Kills != 8 || best[0].Turns != 60 {
		t.Errorf("best run = %d kills in %d turns, expected 8 in 60", best[0].Kills, best[0].Turns)
	}
	if best[1].Kills != 8 || best[1].Turns != 80 {
		t.Errorf("second run = %d kills in %d turns, expected 8 in 80", best[1].Kills, best[1].Turns)
	}
	if best[2].Kills != 2 {
		t.Errorf("third run kills = %d, expected 2", best[2].Kills)
	}

	scoutRuns, err := store.BestRuns("scout", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(scoutRuns) != 1 {
		t.Errorf("expected 1 scout run, got %d", len(scoutRuns))
	}
}

func TestRecentRuns(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(testEntry("classic", true, 10+i, i)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(recent))
	}
	// Newest first (same timestamp resolution, falls back to id desc)
	if recent[0].Kills != 4 {
		t.Errorf("newest run kills = %d, expected 4", recent[0].Kills)
	}

	filtered, err := store.RecentRuns("scout", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(filtered) != 0 {
		t.Errorf("expected no scout runs, got %d", len(filtered))
	}
}

func TestStats(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(testEntry("cautious", true, 100, 6)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(testEntry("cautious", false, 20, 1)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	stats, err := store.Stats("cautious")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, expected 2", stats.RunsCount)
	}
	if stats.Victories != 1 {
		t.Errorf("Victories = %d, expected 1", stats.Victories)
	}
	if stats.BestKills != 6 {
		t.Errorf("BestKills = %d, expected 6", stats.BestKills)
	}
	if stats.AvgTurns != 60 {
		t.Errorf("AvgTurns = %f, expected 60", stats.AvgTurns)
	}

	// Stats for a variant with no runs should be all zeroes, not an error
	empty, err := store.Stats("classic")
	if err != nil {
		t.Fatalf("Stats() failed for empty variant: %v", err)
	}
	if empty.RunsCount != 0 {
		t.Errorf("empty RunsCount = %d, expected 0", empty.RunsCount)
	}
}

func TestClearRuns(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(testEntry("classic", true, 50, 5)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(testEntry("scout", true, 50, 5)); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	if err := store.ClearRuns("classic"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	classic, err := store.RecentRuns("classic", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(classic) != 0 {
		t.Errorf("expected classic runs cleared, got %d", len(classic))
	}

	scout, err := store.RecentRuns("scout", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(scout) != 1 {
		t.Errorf("scout runs should survive, got %d", len(scout))
	}
}
