package store

import (
	"fmt"
	"os"

	"vc-go/internal/vc"
)

// IndexStore persists the index record as a JSON file.
type IndexStore struct {
	path  string
	clock vc.Clock
}

// NewIndexStore creates an IndexStore backed by the file at path.
func NewIndexStore(path string, clock vc.Clock) *IndexStore {
	return &IndexStore{path: path, clock: clock}
}

// Load returns the current index. If the file does not exist, a default
// empty record is written to disk and returned.
func (s *IndexStore) Load() (*vc.Index, error) {
	var index vc.Index
	err := readJSON(s.path, &index)
	if os.IsNotExist(err) {
		fresh := vc.NewIndex(s.clock.Now())
		if err := s.Save(fresh); err != nil {
			return nil, fmt.Errorf("initializing index: %w", err)
		}
		return fresh, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading index: %w", err)
	}
	return &index, nil
}

// Save overwrites the on-disk index with a single whole-file write.
func (s *IndexStore) Save(index *vc.Index) error {
	if err := writeJSON(s.path, index); err != nil {
		return fmt.Errorf("saving index: %w", err)
	}
	return nil
}

var _ vc.IndexStore = (*IndexStore)(nil)
