//go:build !windows

package services

import "os"

// Attribute bits are a Windows concept.
func fileAttributes(_ os.FileInfo) uint32 {
	return 0
}
