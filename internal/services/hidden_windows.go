//go:build windows

package services

// PlatformHiddenPolicy uses the file attribute bits on Windows.
func PlatformHiddenPolicy() HiddenPolicy {
	return AttributePolicy{}
}
