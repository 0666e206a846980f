package services

import (
	"io"
	"io/fs"

	"github.com/sirupsen/logrus"

	"foldersize/internal/domain"
)

// Stats counts what a Builder saw. Failures are environmental and never stop
// a build.
type Stats struct {
	Dirs             int64
	Files            int64
	Links            int64
	Excluded         int64
	ListFailures     int64
	MetadataFailures int64
}

func (stats Stats) Failures() int64 {
	return stats.ListFailures + stats.MetadataFailures
}

// Builder walks a Provider depth-first and produces an aggregated tree.
// It is single-threaded and a Builder must not be shared between goroutines.
type Builder struct {
	provider   Provider
	exclusions *ExclusionPolicy
	hidden     HiddenPolicy
	log        logrus.FieldLogger
	stats      Stats

	// OnDirectory, when set, is called before each directory is listed.
	OnDirectory func(path string, stats Stats)
}

// NewBuilder wires a Builder. A nil exclusion policy excludes nothing, a nil
// hidden policy falls back to the platform default and a nil logger discards.
func NewBuilder(provider Provider, exclusions *ExclusionPolicy, hidden HiddenPolicy, log logrus.FieldLogger) *Builder {
	if hidden == nil {
		hidden = PlatformHiddenPolicy()
	}
	if log == nil {
		log = discardLogger()
	}
	return &Builder{
		provider:   provider,
		exclusions: exclusions,
		hidden:     hidden,
		log:        log,
	}
}

func discardLogger() logrus.FieldLogger {
	discard := logrus.New()
	discard.SetOutput(io.Discard)
	return discard
}

// Stats returns the counters accumulated over every Build call so far.
func (builder *Builder) Stats() Stats {
	return builder.stats
}

// Build returns the entry for the directory at path.
//
// An excluded path becomes an Excluded leaf without being listed. A directory
// that cannot be listed becomes an empty Folder, or an Excluded entry when it
// is the root. Files whose metadata cannot be read are left out. A listing
// entry that cannot report its type panics with a *ContractViolation.
func (builder *Builder) Build(path string, isRoot bool) *domain.Entry {
	hidden := builder.hidden.IsHidden(path, metadataAttributes(builder.provider, path))

	if builder.exclusions.Match(path) {
		builder.stats.Excluded++
		builder.log.WithField("path", path).Debug("excluded")
		return domain.NewExcluded(path, true, hidden, isRoot)
	}

	if builder.OnDirectory != nil {
		builder.OnDirectory(path, builder.stats)
	}

	handles, err := builder.provider.ListDirectory(path)
	if err != nil {
		builder.stats.ListFailures++
		builder.log.WithFields(logrus.Fields{
			"path":  path,
			"error": err,
		}).Warn("cannot list directory")
		if isRoot {
			return domain.NewExcluded(path, true, hidden, true)
		}
		builder.stats.Dirs++
		return domain.NewFolder(path, 0, hidden, false, nil)
	}

	var total uint64
	children := make([]*domain.Entry, 0, len(handles))
	for _, handle := range handles {
		child := builder.buildChild(handle)
		if child == nil {
			continue
		}
		total += child.SizeOrZero()
		children = append(children, child)
	}

	builder.stats.Dirs++
	return domain.NewFolder(path, total, hidden, isRoot, Rollup(path, children))
}

func (builder *Builder) buildChild(handle DirEntryHandle) *domain.Entry {
	path := handle.Path()
	mode, err := handle.FileType()
	if err != nil {
		panic(&ContractViolation{Path: path, Err: err})
	}

	switch {
	case mode&fs.ModeSymlink != 0:
		builder.stats.Links++
		return domain.NewLink(path, builder.hidden.IsHidden(path, metadataAttributes(builder.provider, path)))
	case mode.IsDir():
		return builder.Build(path, false)
	}

	metadata, err := builder.provider.Metadata(path)
	if err != nil {
		builder.stats.MetadataFailures++
		builder.log.WithFields(logrus.Fields{
			"path":  path,
			"error": err,
		}).Warn("cannot read metadata")
		return nil
	}
	builder.stats.Files++
	return domain.NewFile(path, metadata.Size, builder.hidden.IsHidden(path, knownAttributes(metadata.Attributes)))
}
