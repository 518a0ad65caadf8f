package vc

import "time"

// RecordVersion is the schema version written into new index and journal
// records. Readers do not migrate old versions; the format has never changed.
const RecordVersion = "1.0.0"

// Index is the singleton record tracking snapshot references and git
// counters for a project. It is loaded, mutated, and saved whole on every
// operation that touches it.
type Index struct {
	Version      string                   `json:"version"`
	LastUpdated  time.Time                `json:"last_updated"`
	Git          GitState                 `json:"git"`
	Snapshots    map[string][]SnapshotRef `json:"snapshots"`
	TrackedFiles map[string]string        `json:"tracked_files"`
}

// GitState tracks what this tool knows about the project's git repository.
// It is advisory: the repository itself is the source of truth.
type GitState struct {
	Initialized    bool      `json:"initialized"`
	CommitsCount   int       `json:"commits_count"`
	LastCommit     time.Time `json:"last_commit,omitzero"`
	LastCommitHash string    `json:"last_commit_hash,omitempty"`
}

// SnapshotRef points at one snapshot directory on disk.
type SnapshotRef struct {
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// NewIndex returns an empty index with default zero counters.
func NewIndex(now time.Time) *Index {
	return &Index{
		Version:     RecordVersion,
		LastUpdated: now,
		Snapshots: map[string][]SnapshotRef{
			Daily.IndexKey():        {},
			Hourly.IndexKey():       {},
			BeforeChange.IndexKey(): {},
		},
		TrackedFiles: map[string]string{},
	}
}

// Journal is the append-only log of change records. Entry order is
// insertion order and is never rewritten.
type Journal struct {
	Version    string         `json:"version"`
	Created    time.Time      `json:"created"`
	Entries    []JournalEntry `json:"entries"`
	Statistics JournalStats   `json:"statistics"`
}

// JournalStats holds running totals maintained on every append.
type JournalStats struct {
	TotalChanges   int `json:"total_changes"`
	TotalSnapshots int `json:"total_snapshots"`
}

// NewJournal returns an empty journal.
func NewJournal(now time.Time) *Journal {
	return &Journal{
		Version: RecordVersion,
		Created: now,
		Entries: []JournalEntry{},
	}
}

// EntryType classifies a journal entry.
type EntryType string

const (
	EntrySnapshot  EntryType = "snapshot"
	EntryChange    EntryType = "change"
	EntryGitCommit EntryType = "git_commit"
)

// JournalEntry is one immutable record in the journal. RollbackAvailable
// is derived at append time: true iff the entry references a snapshot or
// a git commit.
type JournalEntry struct {
	ID                string    `json:"id"`
	Timestamp         time.Time `json:"timestamp"`
	Type              EntryType `json:"type"`
	Description       string    `json:"description"`
	FilesAffected     []string  `json:"files_affected"`
	SnapshotPath      string    `json:"snapshot_path,omitempty"`
	GitCommit         string    `json:"git_commit,omitempty"`
	RollbackAvailable bool      `json:"rollback_available"`
}

// Manifest describes one snapshot directory. It is written as
// manifest.json inside the snapshot after all content has been copied;
// the statistics are computed before the manifest file exists, so the
// manifest never counts itself.
type Manifest struct {
	SnapshotType string    `json:"snapshot_type"`
	CreatedAt    time.Time `json:"created_at"`
	FilesCount   int       `json:"files_count"`
	TotalSize    int64     `json:"total_size"`
	Checksum     string    `json:"checksum"`
}

// Operation is one row in the operation log: a single CLI invocation that
// mutated project state.
type Operation struct {
	ID         int64
	Operation  string
	Parameters string
	StartedAt  time.Time
	FinishedAt *time.Time
	Status     string
}
