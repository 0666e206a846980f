package domain

import (
	"path/filepath"
	"strings"
)

// Find returns the entry whose path equals target. When no descendant matches,
// the deepest entry whose path contains target is returned instead, so a stale
// path resolves to its nearest surviving ancestor.
//
// Rollup entries share their parent's path and are searched transparently.
// With duplicate sibling paths the first in child order wins.
func (entry *Entry) Find(target string) *Entry {
	if entry.Path == target {
		return entry
	}
	child := entry.childContaining(target)
	if child == nil {
		return entry
	}
	return child.Find(target)
}

func (entry *Entry) childContaining(target string) *Entry {
	for _, child := range entry.Children() {
		if child.Kind == KindRollup {
			if inner := child.childContaining(target); inner != nil {
				return inner
			}
			continue
		}
		if HasPathPrefix(target, child.Path) {
			return child
		}
	}
	return nil
}

// HasPathPrefix reports whether prefix names path itself or one of its
// ancestors, comparing whole path components.
func HasPathPrefix(path, prefix string) bool {
	if prefix == "" || path == prefix {
		return true
	}
	if strings.HasSuffix(prefix, string(filepath.Separator)) {
		return strings.HasPrefix(path, prefix)
	}
	return strings.HasPrefix(path, prefix+string(filepath.Separator))
}

// TreeIndex is a read-only view over a scanned tree used for navigation.
type TreeIndex struct {
	Root *Entry
}

func NewTreeIndex(root *Entry) TreeIndex {
	return TreeIndex{Root: root}
}

func (index TreeIndex) Find(path string) *Entry {
	if index.Root == nil {
		return nil
	}
	return index.Root.Find(path)
}

// Parent returns the path one level above path, or false at the root.
func (index TreeIndex) Parent(path string) (string, bool) {
	if index.Root == nil || path == index.Root.Path || !HasPathPrefix(path, index.Root.Path) {
		return "", false
	}
	parent := filepath.Dir(path)
	if parent == path {
		return "", false
	}
	return parent, true
}
