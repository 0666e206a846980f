package services

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FSProvider lists directories of an afero filesystem. Listings never follow
// symlinks, so a link shows up as a link and not as its target.
type FSProvider struct {
	fs afero.Fs
}

func NewFSProvider(fsys afero.Fs) *FSProvider {
	return &FSProvider{fs: fsys}
}

type fsHandle struct {
	path string
	mode fs.FileMode
}

func (handle fsHandle) Path() string {
	return handle.path
}

func (handle fsHandle) FileType() (fs.FileMode, error) {
	return handle.mode.Type(), nil
}

func (provider *FSProvider) ListDirectory(path string) ([]DirEntryHandle, error) {
	infos, err := afero.ReadDir(provider.fs, path)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}
	handles := make([]DirEntryHandle, 0, len(infos))
	for _, info := range infos {
		handles = append(handles, fsHandle{
			path: filepath.Join(path, info.Name()),
			mode: info.Mode(),
		})
	}
	return handles, nil
}

func (provider *FSProvider) Metadata(path string) (Metadata, error) {
	info, err := provider.lstat(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("metadata %s: %w", path, err)
	}
	var size uint64
	if info.Size() > 0 {
		size = uint64(info.Size())
	}
	return Metadata{Size: size, Attributes: fileAttributes(info)}, nil
}

func (provider *FSProvider) lstat(path string) (os.FileInfo, error) {
	if lstater, ok := provider.fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return provider.fs.Stat(path)
}
