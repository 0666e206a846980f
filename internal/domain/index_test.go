package domain

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func p(parts ...string) string {
	return string(filepath.Separator) + filepath.Join(parts...)
}

func sampleTree() *Entry {
	small := NewFile(p("root", "a.txt"), 1, false)
	tiny := NewFile(p("root", "b.txt"), 2, false)
	rollup := NewRollup(p("root"), []*Entry{small, tiny})
	deep := NewFile(p("root", "sub", "inner", "deep.bin"), 40, false)
	inner := NewFolder(p("root", "sub", "inner"), 40, false, false, []*Entry{deep})
	sub := NewFolder(p("root", "sub"), 40, false, false, []*Entry{inner})
	link := NewLink(p("root", "link"), false)
	return NewFolder(p("root"), 43, false, true, []*Entry{sub, rollup, link})
}

func TestFindSelf(t *testing.T) {
	entry := NewFolder("this", 0, false, true, nil)
	assert.Same(t, entry, entry.Find("this"))
}

func TestFindSelfWithChildOfSameName(t *testing.T) {
	child := NewFolder("this", 0, false, false, nil)
	entry := NewFolder("this", 0, false, true, []*Entry{child})
	assert.Same(t, entry, entry.Find("this"))
}

func TestFindChild(t *testing.T) {
	child := NewFolder(filepath.Join("this", "this"), 10, false, false, nil)
	entry := NewFolder("this", 10, false, true, []*Entry{child})

	found := entry.Find(filepath.Join("this", "this"))
	require.NotNil(t, found)
	assert.Equal(t, uint64(10), found.SizeOrZero())
}

func TestFindUnrelatedSiblingFallsBackToSelf(t *testing.T) {
	that := NewFolder("that", 0, false, false, nil)
	entry := NewFolder("this", 0, false, true, []*Entry{that})
	assert.Same(t, entry, entry.Find("this"))
	assert.Equal(t, "that"+string(filepath.Separator), entry.Find("that").Name())
}

func TestFindIdentityForEveryUniquePath(t *testing.T) {
	root := sampleTree()
	root.Walk(func(entry *Entry) {
		if entry.Kind == KindRollup {
			return
		}
		assert.Same(t, entry, root.Find(entry.Path), entry.Path)
	})
}

func TestFindSearchesThroughRollup(t *testing.T) {
	root := sampleTree()
	found := root.Find(p("root", "b.txt"))
	require.NotNil(t, found)
	assert.Equal(t, KindFile, found.Kind)
	assert.Equal(t, uint64(2), found.SizeOrZero())
}

func TestFindFallsBackToDeepestAncestor(t *testing.T) {
	root := sampleTree()

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{name: "missing under inner", target: p("root", "sub", "inner", "gone"), want: p("root", "sub", "inner")},
		{name: "missing under sub", target: p("root", "sub", "other", "x"), want: p("root", "sub")},
		{name: "missing at top", target: p("root", "nothing"), want: p("root")},
		{name: "outside the tree", target: p("elsewhere"), want: p("root")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, root.Find(tt.target).Path)
		})
	}
}

func TestFindDoesNotMatchPartialComponent(t *testing.T) {
	root := sampleTree()
	assert.Equal(t, p("root"), root.Find(p("root", "subway")).Path)
}

func TestHasPathPrefix(t *testing.T) {
	sep := string(filepath.Separator)
	assert.True(t, HasPathPrefix(p("a", "b"), p("a")))
	assert.True(t, HasPathPrefix(p("a"), p("a")))
	assert.True(t, HasPathPrefix(p("a"), sep))
	assert.True(t, HasPathPrefix(p("a"), ""))
	assert.False(t, HasPathPrefix(p("ab"), p("a")))
	assert.False(t, HasPathPrefix(p("a"), p("a", "b")))
}

func TestTreeIndexParent(t *testing.T) {
	index := NewTreeIndex(sampleTree())

	parent, ok := index.Parent(p("root", "sub", "inner"))
	require.True(t, ok)
	assert.Equal(t, p("root", "sub"), parent)

	_, ok = index.Parent(p("root"))
	assert.False(t, ok, "root has no parent")

	_, ok = index.Parent(p("elsewhere", "x"))
	assert.False(t, ok, "paths outside the tree have no parent")

	assert.Nil(t, TreeIndex{}.Find(p("root")))
}
