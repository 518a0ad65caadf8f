package vc_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"vc-go/internal/testutil"
	"vc-go/internal/vc"
)

func TestVCService_Commit(t *testing.T) {
	t.Parallel()
	root := testutil.NewTestProject(t)
	clock := testutil.FixedClock()
	g := testutil.NewMemoryGit()
	svc := newTestService(t, root, g, clock)

	g.MakeDirty("src/main.ts")
	hash, created, err := svc.Commit("add login flow", "feat")
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if !created {
		t.Fatal("expected a commit to be created")
	}
	if hash != "commit-0001" {
		t.Errorf("hash = %q, want %q", hash, "commit-0001")
	}

	// Repository bootstrap: init, identity, ignore file.
	if !g.Inited {
		t.Error("repository was not initialized")
	}
	if g.Name != "VC Agent" || g.Email != "agent@vc.local" {
		t.Errorf("identity = %q <%s>", g.Name, g.Email)
	}
	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		t.Fatalf("reading .gitignore: %v", err)
	}
	if string(data) != vc.DefaultGitIgnore {
		t.Error(".gitignore does not match default content")
	}

	// All configured pathspecs were staged.
	if len(g.Staged) != 7 {
		t.Errorf("staged pathspecs = %d, want 7: %v", len(g.Staged), g.Staged)
	}

	// Message carries the type tag.
	if len(g.Messages) != 1 || g.Messages[0] != "[feat] add login flow" {
		t.Errorf("messages = %v", g.Messages)
	}

	// Index counters
	index := loadIndex(t, root, clock)
	if !index.Git.Initialized {
		t.Error("index not marked initialized")
	}
	if index.Git.CommitsCount != 1 {
		t.Errorf("commits_count = %d, want 1", index.Git.CommitsCount)
	}
	if index.Git.LastCommitHash != hash {
		t.Errorf("last_commit_hash = %q, want %q", index.Git.LastCommitHash, hash)
	}

	// Journal gained one git_commit entry.
	journal := loadJournal(t, root, clock)
	if len(journal.Entries) != 1 {
		t.Fatalf("journal entries = %d, want 1", len(journal.Entries))
	}
	entry := journal.Entries[0]
	if entry.Type != vc.EntryGitCommit {
		t.Errorf("entry type = %q, want %q", entry.Type, vc.EntryGitCommit)
	}
	if entry.GitCommit != hash {
		t.Errorf("entry git commit = %q, want %q", entry.GitCommit, hash)
	}
	if entry.SnapshotPath != "" {
		t.Errorf("entry snapshot path = %q, want empty", entry.SnapshotPath)
	}
	if !entry.RollbackAvailable {
		t.Error("expected rollback_available = true")
	}
	if journal.Statistics.TotalSnapshots != 0 {
		t.Errorf("total_snapshots = %d, want 0", journal.Statistics.TotalSnapshots)
	}
}

func TestVCService_Commit_CleanTree(t *testing.T) {
	t.Parallel()
	root := testutil.NewTestProject(t)
	clock := testutil.FixedClock()
	g := testutil.NewMemoryGit()
	svc := newTestService(t, root, g, clock)

	hash, created, err := svc.Commit("nothing changed", "chore")
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if created || hash != "" {
		t.Errorf("Commit() = (%q, %v), want (\"\", false)", hash, created)
	}

	// Repository was still initialized, but no commit and no journal entry.
	if !g.Inited {
		t.Error("repository should be initialized even on a clean tree")
	}
	if len(g.Messages) != 0 {
		t.Errorf("messages = %v, want none", g.Messages)
	}
	journal := loadJournal(t, root, clock)
	if len(journal.Entries) != 0 {
		t.Errorf("journal entries = %d, want 0", len(journal.Entries))
	}
	index := loadIndex(t, root, clock)
	if index.Git.CommitsCount != 0 {
		t.Errorf("commits_count = %d, want 0", index.Git.CommitsCount)
	}
}

func TestVCService_Commit_InvalidType(t *testing.T) {
	t.Parallel()
	root := testutil.NewTestProject(t)
	g := testutil.NewMemoryGit()
	svc := newTestService(t, root, g, testutil.FixedClock())

	_, _, err := svc.Commit("message", "banana")
	if err == nil {
		t.Fatal("expected an error for an unknown commit type")
	}
	if !strings.Contains(err.Error(), "unknown commit type") {
		t.Errorf("error = %v", err)
	}
	if g.Inited {
		t.Error("validation must happen before repository initialization")
	}
}

func TestVCService_Commit_PreservesExistingGitIgnore(t *testing.T) {
	t.Parallel()
	root := testutil.NewTestProject(t)
	custom := "dist/\n"
	testutil.WriteFile(t, root, ".gitignore", custom)
	g := testutil.NewMemoryGit()
	svc := newTestService(t, root, g, testutil.FixedClock())

	g.MakeDirty("src/main.ts")
	if _, _, err := svc.Commit("msg", "chore"); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != custom {
		t.Error("existing .gitignore was overwritten")
	}
}

func TestVCService_Commit_InitOnlyOnce(t *testing.T) {
	t.Parallel()
	root := testutil.NewTestProject(t)
	clock := testutil.FixedClock()
	g := testutil.NewMemoryGit()
	svc := newTestService(t, root, g, clock)

	g.MakeDirty("a")
	if _, _, err := svc.Commit("first", "feat"); err != nil {
		t.Fatalf("first Commit() error = %v", err)
	}

	// A later invocation against the already-initialized repository must
	// not rewrite identity or re-init.
	g.Name, g.Email = "", ""
	g.MakeDirty("b")
	hash, created, err := svc.Commit("second", "fix")
	if err != nil {
		t.Fatalf("second Commit() error = %v", err)
	}
	if !created || hash != "commit-0002" {
		t.Errorf("Commit() = (%q, %v), want (commit-0002, true)", hash, created)
	}
	if g.Name != "" {
		t.Error("identity was reconfigured on an initialized repository")
	}

	index := loadIndex(t, root, clock)
	if index.Git.CommitsCount != 2 {
		t.Errorf("commits_count = %d, want 2", index.Git.CommitsCount)
	}
}
