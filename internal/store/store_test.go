package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"vc-go/internal/store"
	"vc-go/internal/testutil"
	"vc-go/internal/vc"
)

func TestIndexStore(t *testing.T) {
	t.Parallel()
	clock := testutil.FixedClock()

	t.Run("load creates default record on disk", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "index.json")
		s := store.NewIndexStore(path, clock)

		index, err := s.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if index.Version != vc.RecordVersion {
			t.Errorf("version = %q, want %q", index.Version, vc.RecordVersion)
		}
		if index.Snapshots == nil {
			t.Error("snapshots map not initialized")
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("default record not written to disk: %v", err)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "index.json")
		s := store.NewIndexStore(path, clock)

		index, err := s.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		index.Git.Initialized = true
		index.Git.CommitsCount = 3
		index.Snapshots["daily"] = append(index.Snapshots["daily"], vc.SnapshotRef{
			Path:      "/p/daily/2024-01-15",
			Timestamp: clock.Now(),
		})
		if err := s.Save(index); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, err := s.Load()
		if err != nil {
			t.Fatalf("reload error = %v", err)
		}
		if !got.Git.Initialized || got.Git.CommitsCount != 3 {
			t.Errorf("git state = %+v", got.Git)
		}
		if len(got.Snapshots["daily"]) != 1 {
			t.Fatalf("daily entries = %d, want 1", len(got.Snapshots["daily"]))
		}
		if got.Snapshots["daily"][0].Path != "/p/daily/2024-01-15" {
			t.Errorf("path = %q", got.Snapshots["daily"][0].Path)
		}
	})

	t.Run("malformed file is a fatal error", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "index.json")
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := store.NewIndexStore(path, clock).Load(); err == nil {
			t.Fatal("Load() should fail on malformed content")
		}
	})

	t.Run("save leaves no temp files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		s := store.NewIndexStore(filepath.Join(dir, "index.json"), clock)
		if _, err := s.Load(); err != nil {
			t.Fatal(err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), "tmp-") {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
	})
}

func TestJournalStore(t *testing.T) {
	t.Parallel()
	clock := testutil.FixedClock()

	t.Run("load creates default record on disk", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "journal.json")
		s := store.NewJournalStore(path, clock)

		journal, err := s.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if journal.Version != vc.RecordVersion {
			t.Errorf("version = %q, want %q", journal.Version, vc.RecordVersion)
		}
		if len(journal.Entries) != 0 {
			t.Errorf("entries = %d, want 0", len(journal.Entries))
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("default record not written to disk: %v", err)
		}
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "journal.json")
		s := store.NewJournalStore(path, clock)

		journal, err := s.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		journal.Entries = append(journal.Entries, vc.JournalEntry{
			ID:            "entry-0001",
			Timestamp:     time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			Type:          vc.EntryChange,
			Description:   "first change",
			FilesAffected: []string{},
		})
		journal.Statistics.TotalChanges = 1
		if err := s.Save(journal); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, err := s.Load()
		if err != nil {
			t.Fatalf("reload error = %v", err)
		}
		if len(got.Entries) != 1 || got.Entries[0].ID != "entry-0001" {
			t.Errorf("entries = %+v", got.Entries)
		}
		if got.Statistics.TotalChanges != 1 {
			t.Errorf("total_changes = %d, want 1", got.Statistics.TotalChanges)
		}
	})
}
