package vc_test

import (
	"errors"
	"testing"
	"time"

	"vc-go/internal/testutil"
	"vc-go/internal/vc"
)

func TestVCService_Status(t *testing.T) {
	t.Parallel()

	t.Run("fresh project", func(t *testing.T) {
		t.Parallel()
		root := testutil.NewTestProject(t)
		svc := newTestService(t, root, testutil.NewMemoryGit(), testutil.FixedClock())

		report, err := svc.Status()
		if err != nil {
			t.Fatalf("Status() error = %v", err)
		}
		if report.Git.Status != "not_initialized" {
			t.Errorf("git status = %q, want %q", report.Git.Status, "not_initialized")
		}
		if report.Git.HasChanges {
			t.Error("fresh project should report no changes")
		}
		if report.Snapshots != (vc.SnapshotCounts{}) {
			t.Errorf("snapshot counts = %+v, want zeroes", report.Snapshots)
		}
		if report.Journal.EntriesCount != 0 || report.Journal.TotalChanges != 0 {
			t.Errorf("journal report = %+v, want zeroes", report.Journal)
		}
	})

	t.Run("aggregates counts", func(t *testing.T) {
		t.Parallel()
		root := testutil.NewTestProject(t)
		clock := testutil.FixedClock()
		g := testutil.NewMemoryGit()
		svc := newTestService(t, root, g, clock)

		if _, err := svc.CreateSnapshot(vc.Daily); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.CreateSnapshot(vc.Hourly); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.RecordChange("change", nil); err != nil {
			t.Fatal(err)
		}
		clock.Advance(time.Minute)
		if _, err := svc.RecordChange("another", nil); err != nil {
			t.Fatal(err)
		}
		g.MakeDirty("src/main.ts")
		if _, _, err := svc.Commit("msg", "feat"); err != nil {
			t.Fatal(err)
		}

		report, err := svc.Status()
		if err != nil {
			t.Fatalf("Status() error = %v", err)
		}
		want := vc.SnapshotCounts{Daily: 1, Hourly: 1, BeforeChange: 2}
		if report.Snapshots != want {
			t.Errorf("snapshot counts = %+v, want %+v", report.Snapshots, want)
		}
		// 2 snapshot entries + 2 change entries + 1 commit entry
		if report.Journal.EntriesCount != 5 {
			t.Errorf("journal entries = %d, want 5", report.Journal.EntriesCount)
		}
		if report.Journal.TotalChanges != 5 {
			t.Errorf("total changes = %d, want 5", report.Journal.TotalChanges)
		}
		if report.Git.Status != "clean" {
			t.Errorf("git status = %q, want %q (commit clears pending)", report.Git.Status, "clean")
		}
		if report.Git.CommitsCount != 1 {
			t.Errorf("commits count = %d, want 1", report.Git.CommitsCount)
		}
	})

	t.Run("dirty tree", func(t *testing.T) {
		t.Parallel()
		root := testutil.NewTestProject(t)
		g := testutil.NewMemoryGit()
		g.Inited = true
		g.MakeDirty("src/main.ts")
		svc := newTestService(t, root, g, testutil.FixedClock())

		report, err := svc.Status()
		if err != nil {
			t.Fatalf("Status() error = %v", err)
		}
		if report.Git.Status != "dirty" || !report.Git.HasChanges {
			t.Errorf("git report = %+v, want dirty with changes", report.Git)
		}
	})

	t.Run("status query failure degrades", func(t *testing.T) {
		t.Parallel()
		root := testutil.NewTestProject(t)
		g := testutil.NewMemoryGit()
		g.Inited = true
		g.StatusErr = errors.New("exit status 128")
		svc := newTestService(t, root, g, testutil.FixedClock())

		report, err := svc.Status()
		if err != nil {
			t.Fatalf("Status() error = %v, want degraded report", err)
		}
		if report.Git.Status != "unknown" {
			t.Errorf("git status = %q, want %q", report.Git.Status, "unknown")
		}
		if report.Git.HasChanges {
			t.Error("failed query must not claim changes")
		}
	})
}
