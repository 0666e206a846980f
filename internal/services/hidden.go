package services

import (
	"path/filepath"
	"strings"
)

const fileAttributeHidden = 0x02

// AttributeSource fetches the attribute bits of an entry on demand. Policies
// that never look at attributes never trigger the lookup.
type AttributeSource func() (uint32, error)

// HiddenPolicy decides whether an entry counts as hidden on this platform.
type HiddenPolicy interface {
	IsHidden(path string, attributes AttributeSource) bool
}

// DotPolicy treats names starting with a dot as hidden.
type DotPolicy struct{}

func (DotPolicy) IsHidden(path string, _ AttributeSource) bool {
	name := filepath.Base(path)
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}

// AttributePolicy reads the hidden attribute bit. An entry whose attributes
// cannot be read is shown.
type AttributePolicy struct{}

func (AttributePolicy) IsHidden(_ string, attributes AttributeSource) bool {
	if attributes == nil {
		return false
	}
	attrs, err := attributes()
	if err != nil {
		return false
	}
	return attrs&fileAttributeHidden != 0
}

func metadataAttributes(provider Provider, path string) AttributeSource {
	return func() (uint32, error) {
		metadata, err := provider.Metadata(path)
		if err != nil {
			return 0, err
		}
		return metadata.Attributes, nil
	}
}

func knownAttributes(attrs uint32) AttributeSource {
	return func() (uint32, error) {
		return attrs, nil
	}
}
