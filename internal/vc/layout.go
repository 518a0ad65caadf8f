package vc

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Layout describes where a project keeps its sources and where this tool
// keeps its state. All paths derive from Root.
type Layout struct {
	// Root is the project root directory.
	Root string

	// StateDirName is the tool's persistent-state directory, relative to
	// Root (e.g. ".agent"). The versions tree lives inside it.
	StateDirName string

	// SourceDirs are the top-level project subtrees copied into every
	// snapshot. Missing subtrees are skipped.
	SourceDirs []string

	// RootExtensions are the file extensions (with leading dot) of loose
	// root-level files copied into a snapshot's root/ subdirectory.
	RootExtensions []string
}

// versionsSubdir is the snapshot-storage subtree inside the state
// directory. It is excluded when the state directory is copied into a
// snapshot, otherwise each snapshot would contain all previous ones.
const versionsSubdir = "versions"

// StateDir returns the absolute path of the tool's state directory.
func (l Layout) StateDir() string {
	return filepath.Join(l.Root, l.StateDirName)
}

// VersionsDir returns the root of the snapshot storage tree.
func (l Layout) VersionsDir() string {
	return filepath.Join(l.StateDir(), versionsSubdir)
}

// IndexPath returns the path of the index record.
func (l Layout) IndexPath() string {
	return filepath.Join(l.VersionsDir(), "index.json")
}

// JournalPath returns the path of the journal record.
func (l Layout) JournalPath() string {
	return filepath.Join(l.VersionsDir(), "journal.json")
}

// CategoryDir returns the storage root for one snapshot category.
func (l Layout) CategoryDir(c SnapshotCategory) string {
	return filepath.Join(l.VersionsDir(), string(c))
}

// SnapshotDir returns the destination directory for a snapshot of the
// given category taken at t.
func (l Layout) SnapshotDir(c SnapshotCategory, t time.Time) string {
	return filepath.Join(l.CategoryDir(c), filepath.FromSlash(c.BucketPath(t)))
}

// Ensure creates the versions tree and its category subdirectories.
// Called once at startup; stores never create parent directories at
// write time.
func (l Layout) Ensure() error {
	dirs := []string{
		filepath.Join(l.VersionsDir(), "daily"),
		filepath.Join(l.VersionsDir(), "hourly"),
		filepath.Join(l.VersionsDir(), "before-change"),
		filepath.Join(l.VersionsDir(), "snapshots"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("creating versions directory: %w", err)
		}
	}
	return nil
}
