package vc

import (
	"fmt"
	"time"
)

// SnapshotCategory identifies the retention cadence of a snapshot. Each
// category has its own directory-naming scheme under the versions tree.
type SnapshotCategory string

const (
	Daily        SnapshotCategory = "daily"
	Hourly       SnapshotCategory = "hourly"
	BeforeChange SnapshotCategory = "before-change"
)

// Categories lists all snapshot categories in display order.
var Categories = []SnapshotCategory{Daily, Hourly, BeforeChange}

// ParseCategory validates a raw category string.
func ParseCategory(raw string) (SnapshotCategory, error) {
	switch SnapshotCategory(raw) {
	case Daily, Hourly, BeforeChange:
		return SnapshotCategory(raw), nil
	}
	return "", fmt.Errorf("unknown snapshot category: %s", raw)
}

func (c SnapshotCategory) String() string { return string(c) }

// IndexKey returns the key used for this category in the index's
// snapshots map. The on-disk record uses underscores where directory
// names use hyphens.
func (c SnapshotCategory) IndexKey() string {
	if c == BeforeChange {
		return "before_change"
	}
	return string(c)
}

// BucketPath returns the category-specific directory path for a snapshot
// taken at t, relative to the category root.
//
//	daily:         2006-01-02
//	hourly:        2006-01-02/15
//	before-change: 2006-01-02_15-04-05
func (c SnapshotCategory) BucketPath(t time.Time) string {
	switch c {
	case Daily:
		return t.Format("2006-01-02")
	case Hourly:
		return t.Format("2006-01-02/15")
	default:
		return t.Format("2006-01-02_15-04-05")
	}
}
