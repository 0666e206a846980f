package services

import (
	"fmt"
	"io/fs"
)

// DirEntryHandle is one item of a directory listing. FileType reports at least
// the directory and symlink bits without following links.
type DirEntryHandle interface {
	Path() string
	FileType() (fs.FileMode, error)
}

type Metadata struct {
	Size       uint64
	Attributes uint32
}

// Provider supplies directory listings and per-path metadata to the Builder.
type Provider interface {
	ListDirectory(path string) ([]DirEntryHandle, error)
	Metadata(path string) (Metadata, error)
}

// ContractViolation is the panic value raised when a provider breaks its
// contract, such as an entry that cannot report its own type.
type ContractViolation struct {
	Path string
	Err  error
}

func (violation *ContractViolation) Error() string {
	return fmt.Sprintf("provider contract violated for %s: %v", violation.Path, violation.Err)
}

func (violation *ContractViolation) Unwrap() error {
	return violation.Err
}
