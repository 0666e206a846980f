package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultExclusions(t *testing.T) {
	policy, err := NewExclusionPolicy()
	require.NoError(t, err)

	tests := []struct {
		path     string
		excluded bool
	}{
		{"/proc", true},
		{"/sys", true},
		{"/mnt/usb", true},
		{"/mnt/backup drive", true},
		{"/mnt", false},
		{"/mnt/usb/photos", false},
		{"/process", false},
		{"/home/proc", false},
		{"/proc/1", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.excluded, policy.Match(filepath.FromSlash(tt.path)))
		})
	}
}

func TestExtraExclusions(t *testing.T) {
	policy, err := NewExclusionPolicy(`/node_modules$`, `^/var/cache`)
	require.NoError(t, err)

	assert.True(t, policy.Match(filepath.FromSlash("/src/app/node_modules")))
	assert.True(t, policy.Match(filepath.FromSlash("/var/cache/apt")))
	assert.True(t, policy.Match(filepath.FromSlash("/proc")))
	assert.False(t, policy.Match(filepath.FromSlash("/src/app")))
	assert.Len(t, policy.Patterns(), len(DefaultExclusionPatterns)+2)
}

func TestInvalidExclusionPattern(t *testing.T) {
	_, err := NewExclusionPolicy(`(unclosed`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"(unclosed"`)
}

func TestNilExclusionPolicy(t *testing.T) {
	var policy *ExclusionPolicy
	assert.False(t, policy.Match("/proc"))
	assert.Nil(t, policy.Patterns())
}
