package testutil

import (
	"fmt"

	"vc-go/internal/vc"
)

// MemoryGit is an in-memory vc.Git implementation for tests. Tests set
// Pending to simulate a dirty working tree; Commit clears it.
type MemoryGit struct {
	Inited   bool
	Name     string
	Email    string
	Pending  []vc.StatusEntry
	Staged   []string
	Messages []string
	head     string
	commits  int

	// StatusErr, when set, is returned by Status to simulate a failing
	// binary.
	StatusErr error
}

// NewMemoryGit creates an uninitialized MemoryGit.
func NewMemoryGit() *MemoryGit {
	return &MemoryGit{}
}

// MakeDirty adds a pending modification for the given path.
func (g *MemoryGit) MakeDirty(path string) {
	g.Pending = append(g.Pending, vc.StatusEntry{Code: " M", Path: path})
}

func (g *MemoryGit) Initialized() bool { return g.Inited }

func (g *MemoryGit) Init() error {
	g.Inited = true
	return nil
}

func (g *MemoryGit) SetIdentity(name, email string) error {
	g.Name = name
	g.Email = email
	return nil
}

func (g *MemoryGit) Status() (*vc.WorkTreeStatus, error) {
	if g.StatusErr != nil {
		return nil, g.StatusErr
	}
	return &vc.WorkTreeStatus{Entries: g.Pending}, nil
}

func (g *MemoryGit) Add(pathspec string) error {
	g.Staged = append(g.Staged, pathspec)
	return nil
}

func (g *MemoryGit) Commit(message string) error {
	if !g.Inited {
		return fmt.Errorf("repository not initialized")
	}
	g.commits++
	g.head = fmt.Sprintf("commit-%04d", g.commits)
	g.Messages = append(g.Messages, message)
	g.Pending = nil
	return nil
}

func (g *MemoryGit) RevParseHead() (string, error) {
	if g.head == "" {
		return "", fmt.Errorf("no commits yet")
	}
	return g.head, nil
}

var _ vc.Git = (*MemoryGit)(nil)
