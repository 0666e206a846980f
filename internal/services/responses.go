package services

import (
	"time"

	"foldersize/internal/domain"
)

type ScanResult struct {
	RootPath string
	Root     *domain.Entry
	Stats    Stats
	Duration time.Duration
}
