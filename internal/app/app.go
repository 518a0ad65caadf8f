package app

import (
	"fmt"
	"os"
	"time"

	"vc-go/internal/config"
	"vc-go/internal/database"
	"vc-go/internal/git"
	"vc-go/internal/store"
	"vc-go/internal/vc"
)

// VCApp is the application layer between the CLI and VCService.
// It constructs all dependencies from config, exposes the high-level
// operations, and manages the operation-log lifecycle on Close.
type VCApp struct {
	cfg     *config.Config
	oplog   vc.OperationLog
	service *vc.VCService
	op      *Operation
	logFile *os.File
}

// NewVCApp creates a fully wired VCApp from the given config.
// operation identifies the CLI command being run (e.g. "CreateSnapshot").
// The caller must call Close when done.
func NewVCApp(cfg *config.Config, operation string) (*VCApp, error) {
	layout := vc.Layout{
		Root:           cfg.ProjectRoot,
		StateDirName:   cfg.StateDir,
		SourceDirs:     cfg.SourceDirs,
		RootExtensions: cfg.RootExtensions,
	}
	if err := layout.Ensure(); err != nil {
		return nil, fmt.Errorf("preparing versions tree: %w", err)
	}

	clock := vc.RealClock{}
	indexStore := store.NewIndexStore(layout.IndexPath(), clock)
	journalStore := store.NewJournalStore(layout.JournalPath(), clock)
	g := git.New(cfg.ProjectRoot)

	oplog, err := database.NewOperationLogFromConfig(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("creating operation log: %w", err)
	}

	opID := time.Now().UTC().Format("20060102T150405Z")
	logger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		oplog.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	identity := vc.GitIdentity{Name: cfg.Git.UserName, Email: cfg.Git.UserEmail}
	svc := vc.NewVCService(layout, indexStore, journalStore, g, identity, cfg.Git.StagePaths, &slogAdapter{l: logger}, clock)
	op := NewOperation(operation, "")

	return &VCApp{
		cfg:     cfg,
		oplog:   oplog,
		service: svc,
		op:      op,
		logFile: logFile,
	}, nil
}

// persistOperation saves the operation to the log, giving it an
// auto-increment ID. This should only be called for mutating commands.
func (a *VCApp) persistOperation(parameters string) error {
	if a.op.Persisted() {
		return nil // already persisted
	}
	a.op.Parameters = parameters
	rec, err := a.oplog.CreateOperation(a.op.Operation, a.op.Parameters)
	if err != nil {
		return fmt.Errorf("persisting operation: %w", err)
	}
	a.op.ID = rec.ID
	return nil
}

// fail marks the tracked operation failed and passes the error through.
func (a *VCApp) fail(err error) error {
	if err != nil {
		a.op.Status = "error"
	}
	return err
}

// CreateSnapshot creates one snapshot of the given category and returns
// its directory path.
func (a *VCApp) CreateSnapshot(rawCategory string) (string, error) {
	category, err := vc.ParseCategory(rawCategory)
	if err != nil {
		return "", err
	}
	if err := a.persistOperation(string(category)); err != nil {
		return "", err
	}
	path, err := a.service.CreateSnapshot(category)
	return path, a.fail(err)
}

// RecordChange records a journal change entry (preceded by a protective
// snapshot) and returns the new entry id.
func (a *VCApp) RecordChange(description string, files []string) (string, error) {
	if err := a.persistOperation(description); err != nil {
		return "", err
	}
	id, err := a.service.RecordChange(description, files)
	return id, a.fail(err)
}

// Commit stages and commits pending changes. Returns the commit hash and
// whether a commit was created.
func (a *VCApp) Commit(message, commitType string) (string, bool, error) {
	if err := a.persistOperation(commitType); err != nil {
		return "", false, err
	}
	hash, created, err := a.service.Commit(message, commitType)
	return hash, created, a.fail(err)
}

// Status returns the aggregated version-control report. Read-only.
func (a *VCApp) Status() (*vc.Report, error) {
	return a.service.Status()
}

// JournalEntries returns the most recent journal entries. Read-only.
func (a *VCApp) JournalEntries(limit int) ([]vc.JournalEntry, error) {
	return a.service.JournalEntries(limit)
}

// History returns the most recent CLI operations. Read-only.
func (a *VCApp) History(limit int) ([]*vc.Operation, error) {
	return a.oplog.ListOperations(limit)
}

// Close finalizes the tracked operation and closes all resources.
func (a *VCApp) Close() error {
	var firstErr error

	if a.op.Persisted() {
		if err := a.oplog.FinishOperation(a.op.ID, a.op.Status); err != nil {
			firstErr = fmt.Errorf("finishing operation: %w", err)
		}
	}

	if err := a.oplog.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("closing operation log: %w", err)
	}

	if a.logFile != nil {
		a.logFile.Close()
	}

	return firstErr
}
