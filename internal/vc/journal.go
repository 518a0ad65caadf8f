package vc

import "fmt"

// RecordChange records a human-meaningful change in the journal. A full
// before-change snapshot is taken first: the tool never logs a change
// without preserving the pre-change state. Returns the new entry's id.
func (s *VCService) RecordChange(description string, files []string) (string, error) {
	snapshotPath, err := s.buildSnapshot(BeforeChange)
	if err != nil {
		return "", fmt.Errorf("creating protective snapshot: %w", err)
	}

	id, err := s.appendEntry(EntryChange, description, files, snapshotPath, "")
	if err != nil {
		return "", err
	}

	s.logger.Info("change recorded", "entry", id, "files", len(files))
	return id, nil
}

// JournalEntries returns the most recent limit entries in insertion
// order. limit <= 0 returns all entries.
func (s *VCService) JournalEntries(limit int) ([]JournalEntry, error) {
	journal, err := s.journal.Load()
	if err != nil {
		return nil, err
	}
	entries := journal.Entries
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

// appendEntry appends one immutable entry to the journal and persists
// it. Entry ids are sequential ordinals, 1-based and zero-padded, so ids
// are strictly increasing and gap-free.
func (s *VCService) appendEntry(entryType EntryType, description string, files []string, snapshotPath, gitCommit string) (string, error) {
	journal, err := s.journal.Load()
	if err != nil {
		return "", err
	}

	if files == nil {
		files = []string{}
	}
	entry := JournalEntry{
		ID:                fmt.Sprintf("entry-%04d", len(journal.Entries)+1),
		Timestamp:         s.clock.Now(),
		Type:              entryType,
		Description:       description,
		FilesAffected:     files,
		SnapshotPath:      snapshotPath,
		GitCommit:         gitCommit,
		RollbackAvailable: snapshotPath != "" || gitCommit != "",
	}

	journal.Entries = append(journal.Entries, entry)
	journal.Statistics.TotalChanges++
	if snapshotPath != "" {
		journal.Statistics.TotalSnapshots++
	}

	if err := s.journal.Save(journal); err != nil {
		return "", err
	}
	return entry.ID, nil
}
