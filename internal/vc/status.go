package vc

// Report is the read-side aggregation of index counts, journal totals,
// and a live query of the working tree. Building it mutates nothing.
type Report struct {
	Git       GitReport
	Snapshots SnapshotCounts
	Journal   JournalReport
}

// GitReport summarizes repository state. Status is "not_initialized",
// "clean", "dirty", or "unknown" when the live query fails.
type GitReport struct {
	Status       string
	HasChanges   bool
	CommitsCount int
}

// SnapshotCounts holds per-category snapshot totals from the index.
type SnapshotCounts struct {
	Daily        int
	Hourly       int
	BeforeChange int
}

// JournalReport holds journal totals.
type JournalReport struct {
	EntriesCount int
	TotalChanges int
}

// Status aggregates the current version-control state. The git query is
// best-effort: a failure degrades the report instead of aborting it.
func (s *VCService) Status() (*Report, error) {
	index, err := s.index.Load()
	if err != nil {
		return nil, err
	}
	journal, err := s.journal.Load()
	if err != nil {
		return nil, err
	}

	report := &Report{
		Git: GitReport{
			Status:       "not_initialized",
			CommitsCount: index.Git.CommitsCount,
		},
		Snapshots: SnapshotCounts{
			Daily:        len(index.Snapshots[Daily.IndexKey()]),
			Hourly:       len(index.Snapshots[Hourly.IndexKey()]),
			BeforeChange: len(index.Snapshots[BeforeChange.IndexKey()]),
		},
		Journal: JournalReport{
			EntriesCount: len(journal.Entries),
			TotalChanges: journal.Statistics.TotalChanges,
		},
	}

	if s.git.Initialized() {
		status, err := s.git.Status()
		if err != nil {
			s.logger.Warn("git status query failed", "error", err)
			report.Git.Status = "unknown"
		} else if status.Clean() {
			report.Git.Status = "clean"
		} else {
			report.Git.Status = "dirty"
			report.Git.HasChanges = true
		}
	}

	return report, nil
}
