//go:build !windows

package services

// PlatformHiddenPolicy uses the dot-file convention on Unix-like systems.
func PlatformHiddenPolicy() HiddenPolicy {
	return DotPolicy{}
}
