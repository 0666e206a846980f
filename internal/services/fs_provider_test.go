package services

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foldersize/internal/domain"
)

func memTree(t *testing.T) (afero.Fs, string) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	root := filepath.FromSlash("/scan")
	require.NoError(t, fsys.MkdirAll(filepath.Join(root, "dir", "deeper"), 0o755))
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(root, "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(root, "dir", "b.bin"), []byte("abc"), 0o644))
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(root, "dir", "deeper", "c"), make([]byte, 1000), 0o644))
	return fsys, root
}

func TestFSProviderListDirectory(t *testing.T) {
	fsys, root := memTree(t)
	provider := NewFSProvider(fsys)

	handles, err := provider.ListDirectory(root)
	require.NoError(t, err)
	require.Len(t, handles, 2)

	byPath := map[string]fs.FileMode{}
	for _, handle := range handles {
		mode, err := handle.FileType()
		require.NoError(t, err)
		byPath[handle.Path()] = mode
	}
	assert.True(t, byPath[filepath.Join(root, "dir")].IsDir())
	assert.True(t, byPath[filepath.Join(root, "a.txt")].IsRegular())
}

func TestFSProviderMetadata(t *testing.T) {
	fsys, root := memTree(t)
	provider := NewFSProvider(fsys)

	metadata, err := provider.Metadata(filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, uint64(5), metadata.Size)
}

func TestFSProviderMissingPath(t *testing.T) {
	fsys, root := memTree(t)
	provider := NewFSProvider(fsys)

	_, err := provider.ListDirectory(filepath.Join(root, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = provider.Metadata(filepath.Join(root, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildOverMemFS(t *testing.T) {
	fsys, root := memTree(t)
	logger, hook := test.NewNullLogger()
	builder := NewBuilder(NewFSProvider(fsys), nil, DotPolicy{}, logger)

	tree := builder.Build(root, true)

	assert.Equal(t, uint64(1008), tree.SizeOrZero())
	dir := tree.Find(filepath.Join(root, "dir"))
	require.Equal(t, domain.KindFolder, dir.Kind)
	assert.Equal(t, uint64(1003), dir.SizeOrZero())
	assert.Equal(t, uint64(1000), tree.Find(filepath.Join(root, "dir", "deeper")).SizeOrZero())
	assert.Empty(t, hook.AllEntries())
}

func TestBuildOverOSFSWithSymlink(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "target"), make([]byte, 64), 0o644))
	if err := os.Symlink(filepath.Join(root, "target"), filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	builder := NewBuilder(NewFSProvider(afero.NewReadOnlyFs(afero.NewOsFs())), nil, DotPolicy{}, nil)

	tree := builder.Build(root, true)

	assert.Equal(t, uint64(64), tree.SizeOrZero())
	link := tree.Find(filepath.Join(root, "link"))
	assert.Equal(t, domain.KindLink, link.Kind)
	assert.Equal(t, int64(1), builder.Stats().Links)
}
