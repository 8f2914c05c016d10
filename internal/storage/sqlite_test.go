package storage

import (
	"math"
	"os"
	"path/filepath"
	"testing"
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

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	sessions := []Session{
		{MapID: "classic", User: "alice", Frontend: "tui", Frames: 600, Duration: 20, Distance: 12.5},
		{MapID: "corridor", User: "bob", Frontend: "ssh", Frames: 300, Duration: 10, Distance: 3},
		{MapID: "classic", Frontend: "window", Frames: 1200, Duration: 20, Distance: 40},
	}
	for _, s := range sessions {
		if _, err := store.SaveSession(s); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	all, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 sessions, got %d", len(all))
	}
	// Newest first
	if all[0].Frontend != "window" || all[2].User != "alice" {
		t.Errorf("Unexpected order: %+v", all)
	}

	classic, err := store.RecentSessions("classic", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(classic) != 2 {
		t.Errorf("Expected 2 classic sessions, got %d", len(classic))
	}
	if classic[0].FPS() != 60 {
		t.Errorf("Expected 60 fps, got %v", classic[0].FPS())
	}
}

func TestStoreSaveRequiresMap(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveSession(Session{Frontend: "tui"}); err == nil {
		t.Error("Expected error for session without map id")
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 30; i++ {
		if _, err := store.SaveSession(Session{MapID: "classic", Frontend: "bench", Frames: i}); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	got, err := store.RecentSessions("classic", 5)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("Expected 5 sessions, got %d", len(got))
	}

	got, err = store.RecentSessions("classic", 0)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(got) != 20 {
		t.Errorf("Expected default limit of 20, got %d", len(got))
	}
}

func TestStoreMapStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetMapStats("classic")
	if err != nil {
		t.Fatalf("GetMapStats() failed: %v", err)
	}
	if empty.Sessions != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", empty)
	}

	store.SaveSession(Session{MapID: "classic", Frontend: "tui", Frames: 100, Duration: 4, Distance: 1.5})
	store.SaveSession(Session{MapID: "classic", Frontend: "tui", Frames: 50, Duration: 2, Distance: 2})
	store.SaveSession(Session{MapID: "courtyard", Frontend: "tui", Frames: 10, Duration: 1})

	stats, err := store.GetMapStats("classic")
	if err != nil {
		t.Fatalf("GetMapStats() failed: %v", err)
	}
	if stats.Sessions != 2 || stats.TotalFrames != 150 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if math.Abs(stats.TotalDistance-3.5) > 1e-9 || math.Abs(stats.TotalDuration-6) > 1e-9 {
		t.Errorf("Unexpected totals %+v", stats)
	}

	all, err := store.GetAllMapStats()
	if err != nil {
		t.Fatalf("GetAllMapStats() failed: %v", err)
	}
	if len(all) != 2 || all["courtyard"].Sessions != 1 {
		t.Errorf("Unexpected all-map stats %v", all)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{MapID: "classic", Frontend: "tui"})
	store.SaveSession(Session{MapID: "corridor", Frontend: "tui"})

	if err := store.ClearSessions("classic"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	got, _ := store.RecentSessions("", 10)
	if len(got) != 1 || got[0].MapID != "corridor" {
		t.Errorf("Expected only corridor left, got %+v", got)
	}

	if err := store.ClearSessions(""); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}
	got, _ = store.RecentSessions("", 10)
	if len(got) != 0 {
		t.Errorf("Expected empty history, got %d", len(got))
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
