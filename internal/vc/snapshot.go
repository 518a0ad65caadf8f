package vc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"vc-go/internal/fs"
)

// CreateSnapshot copies the project's designated content into a new
// category-named snapshot directory, writes its manifest, appends a
// reference to the index, and records a snapshot journal entry.
// Returns the snapshot directory path.
func (s *VCService) CreateSnapshot(category SnapshotCategory) (string, error) {
	dir, err := s.buildSnapshot(category)
	if err != nil {
		return "", err
	}

	_, err = s.appendEntry(EntrySnapshot, fmt.Sprintf("Created %s snapshot", category), nil, dir, "")
	if err != nil {
		return "", err
	}
	return dir, nil
}

// buildSnapshot performs the copy, manifest write, and index append for
// one snapshot, without touching the journal. RecordChange uses it
// directly so a protective snapshot and its change entry produce a
// single journal record.
//
// Two snapshots of the same category in the same time bucket share a
// directory: each copied subtree is removed and replaced, not merged.
func (s *VCService) buildSnapshot(category SnapshotCategory) (string, error) {
	now := s.clock.Now()
	dir := s.layout.SnapshotDir(category, now)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating snapshot directory: %w", err)
	}

	// Designated source subtrees. Missing ones are not an error.
	for _, name := range s.layout.SourceDirs {
		src := filepath.Join(s.layout.Root, name)
		if _, err := os.Stat(src); os.IsNotExist(err) {
			continue
		}
		if err := fs.CopyTree(src, filepath.Join(dir, name)); err != nil {
			return "", fmt.Errorf("copying %s: %w", name, err)
		}
	}

	// The tool's own state directory, minus its versions subtree.
	// Snapshots live under versions, so copying it would nest every
	// prior snapshot inside this one.
	stateSrc := s.layout.StateDir()
	if _, err := os.Stat(stateSrc); err == nil {
		stateDst := filepath.Join(dir, s.layout.StateDirName)
		if err := fs.CopyTree(stateSrc, stateDst, versionsSubdir); err != nil {
			return "", fmt.Errorf("copying state directory: %w", err)
		}
	}

	if err := s.copyRootFiles(dir); err != nil {
		return "", err
	}

	// Stats are collected strictly before manifest.json exists, so the
	// manifest never counts itself.
	stats, err := fs.CollectTreeStats(dir)
	if err != nil {
		return "", fmt.Errorf("collecting snapshot stats: %w", err)
	}
	manifest := &Manifest{
		SnapshotType: string(category),
		CreatedAt:    now,
		FilesCount:   stats.FilesCount,
		TotalSize:    stats.TotalSize,
		Checksum:     stats.Checksum,
	}
	if err := writeManifest(filepath.Join(dir, "manifest.json"), manifest); err != nil {
		return "", err
	}

	index, err := s.index.Load()
	if err != nil {
		return "", err
	}
	key := category.IndexKey()
	index.Snapshots[key] = append(index.Snapshots[key], SnapshotRef{Path: dir, Timestamp: now})
	index.LastUpdated = s.clock.Now()
	if err := s.index.Save(index); err != nil {
		return "", err
	}

	s.logger.Info("snapshot created",
		"category", string(category),
		"path", dir,
		"files", stats.FilesCount,
		"size", stats.TotalSize,
	)
	return dir, nil
}

// copyRootFiles flat-copies root-level files matching the configured
// extensions into the snapshot's root/ subdirectory. No recursion.
func (s *VCService) copyRootFiles(snapshotDir string) error {
	rootDst := filepath.Join(snapshotDir, "root")
	if err := os.MkdirAll(rootDst, 0755); err != nil {
		return fmt.Errorf("creating root subdirectory: %w", err)
	}

	entries, err := os.ReadDir(s.layout.Root)
	if err != nil {
		return fmt.Errorf("reading project root: %w", err)
	}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !s.matchesRootExtension(entry.Name()) {
			continue
		}
		src := filepath.Join(s.layout.Root, entry.Name())
		if err := fs.CopyFile(src, filepath.Join(rootDst, entry.Name())); err != nil {
			return fmt.Errorf("copying root file %s: %w", entry.Name(), err)
		}
	}
	return nil
}

func (s *VCService) matchesRootExtension(name string) bool {
	ext := filepath.Ext(name)
	for _, allowed := range s.layout.RootExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func writeManifest(path string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// ReadManifest reads the manifest.json inside a snapshot directory.
func ReadManifest(snapshotDir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(snapshotDir, "manifest.json"))
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}
