package services

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

type ProviderOp string

const (
	OpList     ProviderOp = "list"
	OpMetadata ProviderOp = "metadata"
)

type ProviderCall struct {
	Op   ProviderOp
	Path string
}

// ScriptedProvider is an in-memory Provider with scripted failures. It records
// every call so tests can assert on what the Builder asked for and in which
// order.
type ScriptedProvider struct {
	mu         sync.Mutex
	nodes      map[string]*scriptedNode
	listErr    map[string]error
	metaErr    map[string]error
	fileTypErr map[string]error
	calls      []ProviderCall
}

type scriptedNode struct {
	mode       fs.FileMode
	size       uint64
	attributes uint32
	children   []string
}

func NewScriptedProvider() *ScriptedProvider {
	return &ScriptedProvider{
		nodes:      make(map[string]*scriptedNode),
		listErr:    make(map[string]error),
		metaErr:    make(map[string]error),
		fileTypErr: make(map[string]error),
	}
}

// AddDir registers a directory. Children are listed in the order they are
// added.
func (provider *ScriptedProvider) AddDir(path string) *ScriptedProvider {
	return provider.add(path, &scriptedNode{mode: fs.ModeDir})
}

func (provider *ScriptedProvider) AddFile(path string, size uint64) *ScriptedProvider {
	return provider.add(path, &scriptedNode{size: size})
}

func (provider *ScriptedProvider) AddLink(path string) *ScriptedProvider {
	return provider.add(path, &scriptedNode{mode: fs.ModeSymlink})
}

// SetAttributes sets the attribute bits reported by Metadata for path.
func (provider *ScriptedProvider) SetAttributes(path string, attributes uint32) *ScriptedProvider {
	provider.mu.Lock()
	defer provider.mu.Unlock()
	if node, ok := provider.nodes[path]; ok {
		node.attributes = attributes
	}
	return provider
}

func (provider *ScriptedProvider) FailList(path string, err error) *ScriptedProvider {
	provider.mu.Lock()
	defer provider.mu.Unlock()
	provider.listErr[path] = err
	return provider
}

func (provider *ScriptedProvider) FailMetadata(path string, err error) *ScriptedProvider {
	provider.mu.Lock()
	defer provider.mu.Unlock()
	provider.metaErr[path] = err
	return provider
}

// FailFileType makes the listing entry for path report err from FileType.
func (provider *ScriptedProvider) FailFileType(path string, err error) *ScriptedProvider {
	provider.mu.Lock()
	defer provider.mu.Unlock()
	provider.fileTypErr[path] = err
	return provider
}

func (provider *ScriptedProvider) add(path string, node *scriptedNode) *ScriptedProvider {
	provider.mu.Lock()
	defer provider.mu.Unlock()
	if _, exists := provider.nodes[path]; !exists {
		if parent, ok := provider.nodes[filepath.Dir(path)]; ok && filepath.Dir(path) != path {
			parent.children = append(parent.children, path)
		}
	}
	provider.nodes[path] = node
	return provider
}

func (provider *ScriptedProvider) ListDirectory(path string) ([]DirEntryHandle, error) {
	provider.mu.Lock()
	defer provider.mu.Unlock()
	provider.calls = append(provider.calls, ProviderCall{Op: OpList, Path: path})

	if err, ok := provider.listErr[path]; ok {
		return nil, err
	}
	node, ok := provider.nodes[path]
	if !ok {
		return nil, fmt.Errorf("list %s: %w", path, os.ErrNotExist)
	}
	if !node.mode.IsDir() {
		return nil, fmt.Errorf("list %s: not a directory", path)
	}

	handles := make([]DirEntryHandle, 0, len(node.children))
	for _, child := range node.children {
		handles = append(handles, scriptedHandle{
			path: child,
			mode: provider.nodes[child].mode,
			err:  provider.fileTypErr[child],
		})
	}
	return handles, nil
}

func (provider *ScriptedProvider) Metadata(path string) (Metadata, error) {
	provider.mu.Lock()
	defer provider.mu.Unlock()
	provider.calls = append(provider.calls, ProviderCall{Op: OpMetadata, Path: path})

	if err, ok := provider.metaErr[path]; ok {
		return Metadata{}, err
	}
	node, ok := provider.nodes[path]
	if !ok {
		return Metadata{}, fmt.Errorf("metadata %s: %w", path, os.ErrNotExist)
	}
	return Metadata{Size: node.size, Attributes: node.attributes}, nil
}

// Calls returns a copy of the recorded calls in order.
func (provider *ScriptedProvider) Calls() []ProviderCall {
	provider.mu.Lock()
	defer provider.mu.Unlock()
	return append([]ProviderCall{}, provider.calls...)
}

// Listed reports whether ListDirectory was ever called for path.
func (provider *ScriptedProvider) Listed(path string) bool {
	for _, call := range provider.Calls() {
		if call.Op == OpList && call.Path == path {
			return true
		}
	}
	return false
}

type scriptedHandle struct {
	path string
	mode fs.FileMode
	err  error
}

func (handle scriptedHandle) Path() string {
	return handle.path
}

func (handle scriptedHandle) FileType() (fs.FileMode, error) {
	if handle.err != nil {
		return 0, handle.err
	}
	return handle.mode, nil
}
