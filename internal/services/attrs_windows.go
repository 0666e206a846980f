//go:build windows

package services

import (
	"os"
	"syscall"
)

func fileAttributes(info os.FileInfo) uint32 {
	if data, ok := info.Sys().(*syscall.Win32FileAttributeData); ok {
		return data.FileAttributes
	}
	return 0
}
