package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foldersize/internal/domain"
)

func TestTableCompiles(t *testing.T) {
	for _, separator := range []rune{'/', '\\'} {
		annotator, err := compile(separator)
		require.NoError(t, err)
		assert.Len(t, annotator.annotations, len(table))
	}
	assert.NotPanics(t, func() { New() })
}

func TestSlashPaths(t *testing.T) {
	annotator, err := compile('/')
	require.NoError(t, err)

	tests := []struct {
		path string
		want string
	}{
		{"/proc", "Contains virtual files in linux, which will have misleading sizes."},
		{"/etc", "System-wide configuration files."},
		{"/home/sam/Downloads", "Often full of stuff you have downloaded, but don't need anymore."},
		{"/home/sam/.cache", "Per-user caches. Usually safe to clear."},
		{"/games/Stray", "Well, you play a cat. With a backpack. Surprisingly realistic."},
		{"/games/DOOM Eternal", "The never ending suffering of Doom guy."},
		{"/mnt/c/Program Files (x86)", "Your apps and programs - pre 1986 (jk)."},
		{"/lib/Steam/steamapps/common", "Keep going..."},
		{"/src/app/node_modules", "JavaScript dependencies. Reinstalled by the package manager when deleted."},
		{"/games/Strays", ""},
		{"/srv/proc", ""},
		{"/etc/hosts", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, annotator.Comment(tt.path))
		})
	}
}

func TestBackslashPaths(t *testing.T) {
	annotator, err := compile('\\')
	require.NoError(t, err)

	assert.Equal(t, "Do not touch.", annotator.Comment(`C:\Windows\WinSxS`))
	assert.Equal(t, "Don't even think about it.", annotator.Comment(`C:\Windows\System32`))
	assert.Equal(t, "Stores links to the files you have put into the Recycle Bin.", annotator.Comment(`C:\$Recycle.Bin`))
	assert.Equal(t, "Virtual memory file used by Windows.", annotator.Comment(`C:\pagefile.sys`))
	assert.Empty(t, annotator.Comment(`C:\proc`))
}

func TestSeveralCommentsKeepTableOrder(t *testing.T) {
	annotator, err := compile('/')
	require.NoError(t, err)

	comments := annotator.Comments("/Dead Space/doom")

	assert.Equal(t, []string{"So. Many. Limbs!", "The never ending suffering of Doom guy."}, comments)
	assert.Equal(t, "So. Many. Limbs! The never ending suffering of Doom guy.", annotator.Comment("/Dead Space/doom"))
}

func TestForEntry(t *testing.T) {
	annotator, err := compile('/')
	require.NoError(t, err)

	assert.Empty(t, annotator.ForEntry(domain.NewRollup("/proc", nil)))
	assert.Empty(t, annotator.ForEntry(nil))
	assert.Empty(t, annotator.Comments(""))
}

func TestFixSeparators(t *testing.T) {
	assert.Equal(t, `/Users/[\w\s-]+/Downloads$`, fixSeparators(`\\Users\\[\w\s-]+\\Downloads$`, '/'))
	assert.Equal(t, `/\$Recycle.Bin$`, fixSeparators(`\\\$Recycle.Bin$`, '/'))
	assert.Equal(t, `\\Windows$`, fixSeparators(`\\Windows$`, '\\'))
}
