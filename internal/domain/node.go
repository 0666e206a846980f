package domain

import (
	"path/filepath"
)

// Entry is one node of a scanned tree. Which fields are meaningful depends on
// Kind; use the accessor methods rather than reading Bytes or Entries directly.
type Entry struct {
	Kind    Kind
	Path    string
	Bytes   uint64
	Hidden  bool
	IsRoot  bool
	WasDir  bool
	Entries []*Entry
}

func NewFile(path string, size uint64, hidden bool) *Entry {
	return &Entry{Kind: KindFile, Path: path, Bytes: size, Hidden: hidden}
}

func NewFolder(path string, size uint64, hidden, isRoot bool, children []*Entry) *Entry {
	return &Entry{Kind: KindFolder, Path: path, Bytes: size, Hidden: hidden, IsRoot: isRoot, Entries: children}
}

func NewLink(path string, hidden bool) *Entry {
	return &Entry{Kind: KindLink, Path: path, Hidden: hidden}
}

func NewExcluded(path string, wasDir, hidden, isRoot bool) *Entry {
	return &Entry{Kind: KindExcluded, Path: path, WasDir: wasDir, Hidden: hidden, IsRoot: isRoot}
}

// NewRollup wraps absorbed under the parent's path. Its size is the exact sum
// of the absorbed sizes.
func NewRollup(path string, absorbed []*Entry) *Entry {
	var total uint64
	for _, entry := range absorbed {
		size, _ := entry.Size()
		total += size
	}
	return &Entry{Kind: KindRollup, Path: path, Bytes: total, Entries: absorbed}
}

// Size returns the entry size and whether the kind defines one.
func (entry *Entry) Size() (uint64, bool) {
	switch entry.Kind {
	case KindFile, KindFolder, KindRollup:
		return entry.Bytes, true
	case KindLink, KindExcluded:
		return 0, false
	default:
		panic(unknownKind(entry.Kind))
	}
}

// SizeOrZero is Size with undefined sizes counted as zero.
func (entry *Entry) SizeOrZero() uint64 {
	size, _ := entry.Size()
	return size
}

func (entry *Entry) Children() []*Entry {
	switch entry.Kind {
	case KindFolder, KindRollup:
		return entry.Entries
	case KindFile, KindLink, KindExcluded:
		return nil
	default:
		panic(unknownKind(entry.Kind))
	}
}

func (entry *Entry) HasChildren() bool {
	switch entry.Kind {
	case KindFolder:
		return len(entry.Entries) > 0
	case KindRollup:
		return true
	case KindFile, KindLink, KindExcluded:
		return false
	default:
		panic(unknownKind(entry.Kind))
	}
}

// IsDir reports whether the entry is a scanned directory. Rollups and
// excluded directories are not.
func (entry *Entry) IsDir() bool {
	switch entry.Kind {
	case KindFolder:
		return true
	case KindFile, KindLink, KindRollup, KindExcluded:
		return false
	default:
		panic(unknownKind(entry.Kind))
	}
}

// Name is the label shown for the entry in listings.
func (entry *Entry) Name() string {
	switch entry.Kind {
	case KindFile, KindLink:
		return baseName(entry.Path)
	case KindFolder:
		return baseName(entry.Path) + string(filepath.Separator)
	case KindExcluded:
		if entry.WasDir {
			return baseName(entry.Path) + string(filepath.Separator)
		}
		return baseName(entry.Path)
	case KindRollup:
		return RollupName
	default:
		panic(unknownKind(entry.Kind))
	}
}

// Walk visits entry and all descendants depth-first, parents before children.
func (entry *Entry) Walk(visitor func(entry *Entry)) {
	visitor(entry)
	for _, child := range entry.Children() {
		child.Walk(visitor)
	}
}

func baseName(path string) string {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		return path
	}
	return name
}
