package fs

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CopyTree recursively copies the directory src to dst. If dst already
// exists it is removed first, so the copy replaces rather than merges.
// Entries whose name appears in skipDirs are not descended into; this is
// how a snapshot copies the tool's state directory without pulling in
// its own snapshot storage.
//
// Symlinks and other non-regular files are skipped.
func CopyTree(src, dst string, skipDirs ...string) error {
	skip := make(map[string]bool, len(skipDirs))
	for _, name := range skipDirs {
		skip[name] = true
	}

	if err := os.RemoveAll(dst); err != nil {
		return fmt.Errorf("removing existing destination: %w", err)
	}

	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, p)
		if err != nil {
			return fmt.Errorf("computing relative path: %w", err)
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			if p != src && skip[d.Name()] {
				return filepath.SkipDir
			}
			info, err := d.Info()
			if err != nil {
				return fmt.Errorf("stat %s: %w", p, err)
			}
			return os.MkdirAll(target, info.Mode().Perm())
		}

		if !d.Type().IsRegular() {
			return nil
		}
		return CopyFile(p, target)
	})
}

// CopyFile copies a single regular file, preserving its permission bits.
// The destination directory must already exist.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", src, err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	return out.Close()
}
