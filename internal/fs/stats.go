package fs

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/zeebo/xxh3"
)

// TreeStats summarizes the regular files under a directory tree.
type TreeStats struct {
	FilesCount int
	TotalSize  int64
	Checksum   string // xxh3 over all file contents in path order
}

// CollectTreeStats walks dir and returns the file count, total byte
// size, and a content checksum. Files are hashed in sorted relative-path
// order so the checksum is stable for identical trees.
func CollectTreeStats(dir string) (*TreeStats, error) {
	var files []string
	stats := &TreeStats{}

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", p, err)
		}
		stats.FilesCount++
		stats.TotalSize += info.Size()
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}

	sort.Strings(files)
	h := xxh3.New()
	for _, p := range files {
		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", p, err)
		}
		_, err = io.Copy(h, f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("hashing %s: %w", p, err)
		}
	}
	stats.Checksum = fmt.Sprintf("%016x", h.Sum64())

	return stats, nil
}
