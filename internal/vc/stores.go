package vc

// IndexStore persists the singleton index record. Load returns the
// current record, creating it with defaults if absent. Save overwrites
// the on-disk representation with a single whole-file write. Every
// mutation path is load, modify in memory, save; nothing is cached
// between CLI invocations.
type IndexStore interface {
	Load() (*Index, error)
	Save(index *Index) error
}

// JournalStore persists the singleton journal record with the same
// load/modify/save contract as IndexStore.
type JournalStore interface {
	Load() (*Journal, error)
	Save(journal *Journal) error
}

// OperationLog records CLI invocations that mutate project state.
type OperationLog interface {
	// CreateOperation inserts a new running operation and returns it with
	// its assigned ID.
	CreateOperation(operation, parameters string) (*Operation, error)

	// FinishOperation marks an operation finished with the given status
	// ("success" or "error").
	FinishOperation(id int64, status string) error

	// ListOperations returns the most recent operations, newest first.
	ListOperations(limit int) ([]*Operation, error)

	// Close closes the underlying store.
	Close() error
}
