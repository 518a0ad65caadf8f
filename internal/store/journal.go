package store

import (
	"fmt"
	"os"

	"vc-go/internal/vc"
)

// JournalStore persists the journal record as a JSON file.
type JournalStore struct {
	path  string
	clock vc.Clock
}

// NewJournalStore creates a JournalStore backed by the file at path.
func NewJournalStore(path string, clock vc.Clock) *JournalStore {
	return &JournalStore{path: path, clock: clock}
}

// Load returns the current journal. If the file does not exist, a
// default empty record is written to disk and returned.
func (s *JournalStore) Load() (*vc.Journal, error) {
	var journal vc.Journal
	err := readJSON(s.path, &journal)
	if os.IsNotExist(err) {
		fresh := vc.NewJournal(s.clock.Now())
		if err := s.Save(fresh); err != nil {
			return nil, fmt.Errorf("initializing journal: %w", err)
		}
		return fresh, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading journal: %w", err)
	}
	return &journal, nil
}

// Save overwrites the on-disk journal with a single whole-file write.
func (s *JournalStore) Save(journal *vc.Journal) error {
	if err := writeJSON(s.path, journal); err != nil {
		return fmt.Errorf("saving journal: %w", err)
	}
	return nil
}

var _ vc.JournalStore = (*JournalStore)(nil)
