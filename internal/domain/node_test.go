package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeIsUndefinedForLinksAndExcluded(t *testing.T) {
	tests := []struct {
		entry   *Entry
		size    uint64
		defined bool
	}{
		{NewFile("f", 12, false), 12, true},
		{NewFolder("d", 30, false, false, nil), 30, true},
		{NewRollup("d", []*Entry{NewFile("a", 1, false), NewFile("b", 2, false)}), 3, true},
		{NewLink("l", false), 0, false},
		{NewExcluded("x", true, false, false), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.entry.Kind.String(), func(t *testing.T) {
			size, ok := tt.entry.Size()
			assert.Equal(t, tt.size, size)
			assert.Equal(t, tt.defined, ok)
		})
	}
}

func TestNames(t *testing.T) {
	sep := string(filepath.Separator)
	dir := filepath.Join("home", "user")

	assert.Equal(t, "notes.txt", NewFile(filepath.Join(dir, "notes.txt"), 1, false).Name())
	assert.Equal(t, "user"+sep, NewFolder(dir, 1, false, false, nil).Name())
	assert.Equal(t, RollupName, NewRollup(dir, nil).Name())
	assert.Equal(t, "proc"+sep, NewExcluded(filepath.Join(sep, "proc"), true, false, false).Name())
	assert.Equal(t, "current", NewLink(filepath.Join(dir, "current"), false).Name())
}

func TestChildrenAndHasChildren(t *testing.T) {
	empty := NewFolder("d", 0, false, false, nil)
	assert.False(t, empty.HasChildren())
	assert.True(t, NewRollup("d", nil).HasChildren())
	assert.Nil(t, NewFile("f", 1, false).Children())
	assert.False(t, NewLink("l", false).HasChildren())

	assert.True(t, empty.IsDir())
	assert.False(t, NewRollup("d", nil).IsDir())
	assert.False(t, NewExcluded("x", true, false, false).IsDir())
}

func TestUnknownKindPanics(t *testing.T) {
	entry := &Entry{Kind: Kind(42)}
	assert.PanicsWithValue(t, "domain: unhandled entry kind kind(42)", func() {
		entry.Size()
	})
}
