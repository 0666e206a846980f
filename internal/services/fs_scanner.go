package services

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"foldersize/internal/domain"
)

const progressEvery = 32

// FSScanner runs one Builder pass per Scan and remembers the last tree.
type FSScanner struct {
	mu         sync.RWMutex
	provider   Provider
	exclusions *ExclusionPolicy
	hidden     HiddenPolicy
	log        logrus.FieldLogger
	last       *domain.Entry
}

// NewFSScanner wires a scanner. A nil logger discards.
func NewFSScanner(provider Provider, exclusions *ExclusionPolicy, hidden HiddenPolicy, log logrus.FieldLogger) *FSScanner {
	if log == nil {
		log = discardLogger()
	}
	return &FSScanner{
		provider:   provider,
		exclusions: exclusions,
		hidden:     hidden,
		log:        log,
	}
}

// Scan builds the tree under req.RootPath synchronously. When req.Progress is
// set it receives updates with non-blocking sends and is closed on return.
func (scanner *FSScanner) Scan(req ScanRequest) ScanResult {
	start := time.Now()
	root := cleanPath(req.RootPath)
	if req.Progress != nil {
		defer close(req.Progress)
	}

	builder := NewBuilder(scanner.provider, scanner.exclusions, scanner.hidden, scanner.log)
	var visited int64
	builder.OnDirectory = func(path string, stats Stats) {
		visited++
		if req.Progress == nil || visited%progressEvery != 1 {
			return
		}
		progressNonBlocking(req.Progress, ScanProgress{
			Path:     root,
			Current:  path,
			Dirs:     stats.Dirs,
			Files:    stats.Files,
			Failures: stats.Failures(),
		})
	}

	tree := builder.Build(root, true)
	stats := builder.Stats()

	scanner.mu.Lock()
	scanner.last = tree
	scanner.mu.Unlock()

	scanner.log.WithFields(logrus.Fields{
		"root":     root,
		"dirs":     stats.Dirs,
		"files":    stats.Files,
		"failures": stats.Failures(),
		"duration": time.Since(start),
	}).Info("scan complete")

	if req.Progress != nil {
		progressNonBlocking(req.Progress, ScanProgress{
			Path:      root,
			Dirs:      stats.Dirs,
			Files:     stats.Files,
			Failures:  stats.Failures(),
			Completed: true,
		})
	}

	return ScanResult{
		RootPath: root,
		Root:     tree,
		Stats:    stats,
		Duration: time.Since(start),
	}
}

// Snapshot returns an index over the tree of the most recent scan.
func (scanner *FSScanner) Snapshot() domain.TreeIndex {
	scanner.mu.RLock()
	defer scanner.mu.RUnlock()
	return domain.NewTreeIndex(scanner.last)
}

func progressNonBlocking(ch chan<- ScanProgress, msg ScanProgress) {
	select {
	case ch <- msg:
	default:
	}
}

func cleanPath(path string) string {
	if path == "" {
		path = "."
	}
	clean := filepath.Clean(path)
	abs, err := filepath.Abs(clean)
	if err != nil {
		return clean
	}
	return abs
}
