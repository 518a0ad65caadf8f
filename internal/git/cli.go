// Package git adapts the external git binary behind the vc.Git
// interface. All invocation and output parsing of the binary is
// confined to this package.
package git

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"vc-go/internal/vc"
)

// CLI drives the git binary with its working directory fixed to the
// project root.
type CLI struct {
	dir string
}

// New creates a CLI adapter for the repository rooted at dir.
func New(dir string) *CLI {
	return &CLI{dir: dir}
}

// run executes one git command and returns its stdout. A non-zero exit
// is returned as an error carrying the command and trimmed stderr.
func (g *CLI) run(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = g.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("git %s: %w", args[0], err)
		}
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, msg)
	}
	return stdout.String(), nil
}

// Initialized reports whether the repository metadata directory exists.
func (g *CLI) Initialized() bool {
	info, err := os.Stat(filepath.Join(g.dir, ".git"))
	return err == nil && info.IsDir()
}

// Init initializes a new repository.
func (g *CLI) Init() error {
	_, err := g.run("init")
	return err
}

// SetIdentity configures the repository-local committer identity.
func (g *CLI) SetIdentity(name, email string) error {
	if _, err := g.run("config", "user.name", name); err != nil {
		return err
	}
	_, err := g.run("config", "user.email", email)
	return err
}

// Status queries the working tree with --porcelain and parses the
// result. Empty output means a clean tree.
func (g *CLI) Status() (*vc.WorkTreeStatus, error) {
	out, err := g.run("status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parsePorcelain(out), nil
}

// Add stages a pathspec.
func (g *CLI) Add(pathspec string) error {
	_, err := g.run("add", "--", pathspec)
	return err
}

// Commit creates a commit with the given message.
func (g *CLI) Commit(message string) error {
	_, err := g.run("commit", "-m", message)
	return err
}

// RevParseHead resolves the current commit hash.
func (g *CLI) RevParseHead() (string, error) {
	out, err := g.run("rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// parsePorcelain converts `git status --porcelain` output into a
// WorkTreeStatus. Each line is a two-character status code, a space,
// and a path; rename lines keep their "old -> new" form as the path.
func parsePorcelain(out string) *vc.WorkTreeStatus {
	status := &vc.WorkTreeStatus{}
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(line) < 4 {
			continue
		}
		status.Entries = append(status.Entries, vc.StatusEntry{
			Code: line[:2],
			Path: line[3:],
		})
	}
	return status
}

var _ vc.Git = (*CLI)(nil)
