package vc

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultGitIgnore is written to the project root on first repository
// initialization if no ignore file exists yet.
const DefaultGitIgnore = `node_modules/
.next/
download/
*.lock
db/*.db
.env*
!.env.example
`

// Commit stages the configured paths and creates a git commit with the
// message prefixed by its category tag. Returns the resulting commit
// hash and whether a commit was created; a clean working tree yields
// ("", false, nil) and leaves index and journal untouched.
func (s *VCService) Commit(message, commitType string) (string, bool, error) {
	if !IsCommitType(commitType) {
		return "", false, fmt.Errorf("unknown commit type: %s", commitType)
	}

	if err := s.ensureGitInit(); err != nil {
		return "", false, err
	}

	status, err := s.git.Status()
	if err != nil {
		return "", false, fmt.Errorf("querying git status: %w", err)
	}
	if status.Clean() {
		return "", false, nil
	}

	// Stage each configured pathspec. A pathspec that matches nothing
	// (e.g. a source dir that does not exist yet, or a glob with no
	// hits) fails the same way a missing optional subtree does during a
	// snapshot, so those failures are logged and skipped.
	for _, pathspec := range s.stagePaths {
		if err := s.git.Add(pathspec); err != nil {
			s.logger.Warn("staging pathspec skipped", "pathspec", pathspec, "error", err)
		}
	}

	fullMessage := FormatCommitMessage(commitType, message)
	if err := s.git.Commit(fullMessage); err != nil {
		return "", false, fmt.Errorf("creating commit: %w", err)
	}

	hash, err := s.git.RevParseHead()
	if err != nil {
		return "", false, fmt.Errorf("resolving commit hash: %w", err)
	}

	index, err := s.index.Load()
	if err != nil {
		return "", false, err
	}
	now := s.clock.Now()
	index.Git.CommitsCount++
	index.Git.LastCommit = now
	index.Git.LastCommitHash = hash
	index.LastUpdated = now
	if err := s.index.Save(index); err != nil {
		return "", false, err
	}

	if _, err := s.appendEntry(EntryGitCommit, fullMessage, nil, "", hash); err != nil {
		return "", false, err
	}

	s.logger.Info("commit created", "hash", hash, "type", commitType)
	return hash, true, nil
}

// ensureGitInit initializes the repository exactly once. When the
// metadata directory already exists this is a no-op; otherwise a default
// ignore file is written (if absent), the repository is initialized with
// a fixed identity, and the index's initialized flag is set.
func (s *VCService) ensureGitInit() error {
	if s.git.Initialized() {
		return nil
	}

	ignorePath := filepath.Join(s.layout.Root, ".gitignore")
	if _, err := os.Stat(ignorePath); os.IsNotExist(err) {
		if err := os.WriteFile(ignorePath, []byte(DefaultGitIgnore), 0644); err != nil {
			return fmt.Errorf("writing default .gitignore: %w", err)
		}
	}

	if err := s.git.Init(); err != nil {
		return fmt.Errorf("initializing repository: %w", err)
	}
	if err := s.git.SetIdentity(s.identity.Name, s.identity.Email); err != nil {
		return fmt.Errorf("configuring identity: %w", err)
	}

	index, err := s.index.Load()
	if err != nil {
		return err
	}
	index.Git.Initialized = true
	index.LastUpdated = s.clock.Now()
	if err := s.index.Save(index); err != nil {
		return err
	}

	s.logger.Info("repository initialized", "root", s.layout.Root)
	return nil
}
