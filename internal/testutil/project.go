package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// NewTestProject creates a temp project directory populated with the
// usual source subtrees and a few root files, and returns its path.
func NewTestProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	WriteFile(t, root, "src/main.ts", "export const main = () => {};\n")
	WriteFile(t, root, "src/lib/util.ts", "export const noop = () => {};\n")
	WriteFile(t, root, "docs/guide.md", "# Guide\n")
	WriteFile(t, root, "prisma/schema.prisma", "datasource db {}\n")
	WriteFile(t, root, "README.md", "# Test project\n")
	WriteFile(t, root, "package.json", "{}\n")
	WriteFile(t, root, "notes.txt", "not copied by extension\n")
	WriteFile(t, root, ".agent/config.md", "agent notes\n")

	return root
}

// WriteFile writes content to rel under root, creating parent
// directories as needed.
func WriteFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
