package state

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

func TestProgress_Empty(t *testing.T) {
	db := setupTestDB(t)
	m := &Manager{db: db}

	p, err := m.Progress("never-watched")
	if err != nil {
		t.Fatalf("Progress failed: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil progress on empty db, got %+v", p)
	}
}

func TestSaveAndGetProgress(t *testing.T) {
	db := setupTestDB(t)

	p := WatchProgress{
		VideoID:  "vid-123",
		Position: 83 * time.Second,
		Duration: 600 * time.Second,
	}
	if err := saveProgress(db, p); err != nil {
		t.Fatalf("saveProgress failed: %v", err)
	}

	got, err := getProgress(db, "vid-123")
	if err != nil {
		t.Fatalf("getProgress failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil progress")
	}
	if got.Position != p.Position {
		t.Errorf("Position = %v, want %v", got.Position, p.Position)
	}
	if got.Duration != p.Duration {
		t.Errorf("Duration = %v, want %v", got.Duration, p.Duration)
	}
}

func TestSaveProgress_Update(t *testing.T) {
	db := setupTestDB(t)

	_ = saveProgress(db, WatchProgress{VideoID: "vid-1", Position: 10 * time.Second, Duration: 100 * time.Second})
	_ = saveProgress(db, WatchProgress{VideoID: "vid-1", Position: 42 * time.Second, Duration: 100 * time.Second})

	got, _ := getProgress(db, "vid-1")
	if got.Position != 42*time.Second {
		t.Errorf("Position = %v, want updated 42s", got.Position)
	}
}

func TestManager_ProgressSeesPendingWrite(t *testing.T) {
	db := setupTestDB(t)
	m := &Manager{db: db}

	// A debounced save has not hit the database yet; a read must still
	// see it.
	m.SaveProgress(WatchProgress{VideoID: "vid-1", Position: 5 * time.Second, Duration: 60 * time.Second})

	got, err := m.Progress("vid-1")
	if err != nil {
		t.Fatalf("Progress failed: %v", err)
	}
	if got == nil || got.Position != 5*time.Second {
		t.Errorf("Progress = %+v, want pending 5s", got)
	}
}

func TestManager_SwitchingVideoFlushesPending(t *testing.T) {
	db := setupTestDB(t)
	m := &Manager{db: db}

	m.SaveProgress(WatchProgress{VideoID: "vid-1", Position: 30 * time.Second, Duration: 60 * time.Second})
	m.SaveProgress(WatchProgress{VideoID: "vid-2", Position: 1 * time.Second, Duration: 60 * time.Second})

	// vid-1 progress must have been written when vid-2 took its place.
	got, _ := getProgress(db, "vid-1")
	if got == nil || got.Position != 30*time.Second {
		t.Errorf("vid-1 progress = %+v, want flushed 30s", got)
	}
}

func TestManager_CloseFlushesPending(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reel.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := initSchema(db); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}

	m := &Manager{db: db}
	m.SaveProgress(WatchProgress{VideoID: "vid-1", Position: 55 * time.Second, Duration: 60 * time.Second})
	if err := m.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	db2, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to reopen db: %v", err)
	}
	defer db2.Close()

	got, err := getProgress(db2, "vid-1")
	if err != nil {
		t.Fatalf("getProgress failed: %v", err)
	}
	if got == nil || got.Position != 55*time.Second {
		t.Errorf("progress after Close = %+v, want flushed 55s", got)
	}
}

func TestSettings_Defaults(t *testing.T) {
	db := setupTestDB(t)
	m := &Manager{db: db}

	s, err := m.Settings()
	if err != nil {
		t.Fatalf("Settings failed: %v", err)
	}
	if s.Volume != 1.0 || s.Muted || s.Rate != 1.0 || s.Quality != "Auto" {
		t.Errorf("defaults = %+v, want volume 1, unmuted, rate 1, Auto", s)
	}
}

func TestSaveAndGetSettings(t *testing.T) {
	db := setupTestDB(t)
	m := &Manager{db: db}

	want := Settings{Volume: 0.4, Muted: true, Rate: 1.5, Quality: "720p"}
	if err := m.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	got, err := m.Settings()
	if err != nil {
		t.Fatalf("Settings failed: %v", err)
	}
	if *got != want {
		t.Errorf("Settings = %+v, want %+v", *got, want)
	}
}

func TestSaveSettings_Update(t *testing.T) {
	db := setupTestDB(t)
	m := &Manager{db: db}

	_ = m.SaveSettings(Settings{Volume: 0.4, Rate: 1, Quality: "Auto"})
	_ = m.SaveSettings(Settings{Volume: 0.9, Rate: 2, Quality: "1080p HD"})

	got, _ := m.Settings()
	if got.Volume != 0.9 || got.Rate != 2 || got.Quality != "1080p HD" {
		t.Errorf("Settings = %+v, want updated values", got)
	}
}

func TestManager_DB(t *testing.T) {
	db := setupTestDB(t)
	m := &Manager{db: db}
	if m.DB() != db {
		t.Error("DB() should return the underlying database")
	}
}
