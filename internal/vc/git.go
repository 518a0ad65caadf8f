package vc

import "strings"

// Git is a typed adapter over an external git binary. The tool never
// implements version-control logic itself; it only orchestrates this
// small set of operations. All textual-output parsing lives behind the
// interface.
type Git interface {
	// Initialized reports whether the repository metadata directory
	// exists. Used as the idempotency check before Init.
	Initialized() bool

	// Init initializes a new repository in the project root.
	Init() error

	// SetIdentity configures the committer identity for the repository.
	SetIdentity(name, email string) error

	// Status returns the working-tree status.
	Status() (*WorkTreeStatus, error)

	// Add stages the given pathspec.
	Add(pathspec string) error

	// Commit creates a commit with the given message.
	Commit(message string) error

	// RevParseHead resolves the current commit hash.
	RevParseHead() (string, error)
}

// WorkTreeStatus is the parsed result of a porcelain status query.
type WorkTreeStatus struct {
	Entries []StatusEntry
}

// StatusEntry is one changed path in the working tree.
type StatusEntry struct {
	Code string // two-character porcelain status code
	Path string
}

// Clean reports whether the working tree has no pending changes.
func (s *WorkTreeStatus) Clean() bool {
	return len(s.Entries) == 0
}

// CommitTypes are the accepted conventional-commit tags for the commit
// command.
var CommitTypes = []string{"feat", "fix", "docs", "style", "refactor", "test", "chore"}

// IsCommitType reports whether t is an accepted commit tag.
func IsCommitType(t string) bool {
	for _, known := range CommitTypes {
		if t == known {
			return true
		}
	}
	return false
}

// FormatCommitMessage prefixes a commit message with its category tag.
func FormatCommitMessage(commitType, message string) string {
	return "[" + commitType + "] " + strings.TrimSpace(message)
}
