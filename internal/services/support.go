package services

import "foldersize/internal/domain"

type ScanProgress struct {
	Path      string
	Current   string
	Dirs      int64
	Files     int64
	Failures  int64
	Completed bool
}

type SnapshotProvider interface {
	Snapshot() domain.TreeIndex
}
