package vc

// GitIdentity is the fixed committer identity configured when the tool
// initializes a repository.
type GitIdentity struct {
	Name  string
	Email string
}

// VCService is the orchestration layer that coordinates the index store,
// the journal store, the snapshot engine, and the git adapter to perform
// the high-level operations needed by the CLI. It holds no state between
// invocations; every operation re-reads the records from disk.
type VCService struct {
	layout     Layout
	index      IndexStore
	journal    JournalStore
	git        Git
	identity   GitIdentity
	stagePaths []string
	logger     Logger
	clock      Clock
}

// NewVCService creates a new VCService with the provided dependencies.
// stagePaths are the pathspecs staged before every commit (directories
// plus root-level globs).
func NewVCService(layout Layout, index IndexStore, journal JournalStore, git Git, identity GitIdentity, stagePaths []string, logger Logger, clock Clock) *VCService {
	return &VCService{
		layout:     layout,
		index:      index,
		journal:    journal,
		git:        git,
		identity:   identity,
		stagePaths: stagePaths,
		logger:     logger,
		clock:      clock,
	}
}
