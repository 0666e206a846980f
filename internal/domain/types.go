package domain

import "fmt"

type Kind int

const (
	KindFile Kind = iota
	KindFolder
	KindLink
	KindRollup
	KindExcluded
)

func (kind Kind) String() string {
	switch kind {
	case KindFile:
		return "file"
	case KindFolder:
		return "folder"
	case KindLink:
		return "link"
	case KindRollup:
		return "rollup"
	case KindExcluded:
		return "excluded"
	default:
		return fmt.Sprintf("kind(%d)", int(kind))
	}
}

// RollupName is the display name of a synthetic rollup entry.
const RollupName = "<other files...>"

func unknownKind(kind Kind) string {
	return fmt.Sprintf("domain: unhandled entry kind %s", kind)
}
