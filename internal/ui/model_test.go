package ui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foldersize/internal/annotate"
	"foldersize/internal/config"
	"foldersize/internal/domain"
	"foldersize/internal/services"
	"foldersize/internal/state"
)

func testRoot(t *testing.T) string {
	t.Helper()
	root, err := filepath.Abs(filepath.FromSlash("/explore"))
	require.NoError(t, err)
	return root
}

func newTestModel(t *testing.T) (Model, *services.FSScanner) {
	t.Helper()
	root := testRoot(t)
	provider := services.NewScriptedProvider().
		AddDir(root).
		AddDir(filepath.Join(root, "node_modules")).
		AddFile(filepath.Join(root, "node_modules", "left-pad.js"), 2048).
		AddDir(filepath.Join(root, ".git")).
		AddFile(filepath.Join(root, ".git", "HEAD"), 4096).
		AddFile(filepath.Join(root, "notes.txt"), 10).
		AddLink(filepath.Join(root, "current"))
	scanner := services.NewFSScanner(provider, nil, services.DotPolicy{}, nil)

	cfg := config.DefaultConfig()
	cfg.Path = root
	model := NewModel(state.NewState(cfg), scanner, annotate.New(), cfg)
	return model, scanner
}

func scanned(t *testing.T, model Model, scanner *services.FSScanner) Model {
	t.Helper()
	result := scanner.Scan(services.ScanRequest{RootPath: model.state.Path})
	updated, cmd := model.Update(scanResultMsg{result: result})
	assert.Nil(t, cmd)
	return updated.(Model)
}

func press(t *testing.T, model Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, _ := model.Update(msg)
	return updated.(Model)
}

func runes(value string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

func TestNewModelStartsScanning(t *testing.T) {
	model, _ := newTestModel(t)

	assert.True(t, model.scanning)
	assert.NotNil(t, model.Init())
	assert.Contains(t, model.View(), "Scanning...")
}

func TestScanCommandReturnsResult(t *testing.T) {
	model, _ := newTestModel(t)

	msg := model.scanCmd(model.state.Path, model.progress)()

	result, ok := msg.(scanResultMsg)
	require.True(t, ok)
	assert.Equal(t, uint64(2048+4096+10), result.result.Root.SizeOrZero())

	_, open := <-model.progress
	for open {
		_, open = <-model.progress
	}
}

func TestScanResultPopulatesView(t *testing.T) {
	model, scanner := newTestModel(t)
	model = scanned(t, model, scanner)

	assert.False(t, model.scanning)
	assert.Contains(t, model.status, "Scan complete")

	view := model.View()
	assert.Contains(t, view, "node_modules")
	assert.Contains(t, view, domain.RollupName)
	assert.Contains(t, view, "link")
	assert.Contains(t, view, "6,154 bytes")
	assert.Contains(t, view, "JavaScript dependencies")
	assert.NotContains(t, view, ".git")
}

func TestHiddenAndCommentKeys(t *testing.T) {
	model, scanner := newTestModel(t)
	model = scanned(t, model, scanner)

	model = press(t, model, runes("h"))
	assert.True(t, model.state.Prefs.ShowHidden)
	assert.Contains(t, model.View(), ".git")

	model = press(t, model, runes("c"))
	assert.True(t, model.state.Prefs.HideComments)
	assert.NotContains(t, model.View(), "JavaScript dependencies")
}

func TestOpenAndBackKeys(t *testing.T) {
	model, scanner := newTestModel(t)
	model = scanned(t, model, scanner)
	root := testRoot(t)

	model = press(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, filepath.Join(root, "node_modules"), model.state.Current)
	assert.Contains(t, model.View(), domain.RollupName)
	assert.Contains(t, model.View(), backLabel)

	model = press(t, model, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, root, model.state.Current)
	row, ok := model.state.SelectedRow()
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, "node_modules"), row.Entry.Path)
}

func TestRescanIgnoredWhileScanning(t *testing.T) {
	model, _ := newTestModel(t)

	updated, cmd := model.Update(runes("r"))

	assert.Nil(t, cmd)
	assert.True(t, updated.(Model).scanning)
}

func TestProgressUpdatesStatus(t *testing.T) {
	model, _ := newTestModel(t)

	updated, cmd := model.Update(scanProgressMsg{progress: services.ScanProgress{Current: "/explore/sub", Dirs: 3, Files: 7}})

	assert.NotNil(t, cmd)
	assert.Contains(t, updated.(Model).status, "3 folders, 7 files")

	updated, cmd = updated.Update(scanProgressMsg{closed: true})
	assert.Nil(t, cmd)
}

func TestLateProgressAfterResultIsIgnored(t *testing.T) {
	model, scanner := newTestModel(t)
	model = scanned(t, model, scanner)
	status, stats := model.status, model.stats

	updated, cmd := model.Update(scanProgressMsg{progress: services.ScanProgress{Current: "/explore/x", Dirs: 1, Files: 2}})

	assert.Nil(t, cmd)
	assert.Equal(t, status, updated.(Model).status)
	assert.Equal(t, stats, updated.(Model).stats)
}

func TestQuitKey(t *testing.T) {
	model, _ := newTestModel(t)

	_, cmd := model.Update(runes("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestConfigSnapshotCarriesPreferences(t *testing.T) {
	model, scanner := newTestModel(t)
	model.base.ExcludePatterns = []string{"^/data$"}
	model = scanned(t, model, scanner)
	model = press(t, model, runes("h"))

	cfg := model.ConfigSnapshot()

	assert.True(t, cfg.ShowHidden)
	assert.Equal(t, []string{"^/data$"}, cfg.ExcludePatterns)
	assert.Equal(t, config.DefaultConfig().PageSize, cfg.PageSize)
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	assert.Len(t, keys.ShortHelp(), 7)
	full := keys.FullHelp()
	require.Len(t, full, 4)
	assert.Equal(t, []string{"enter", "right", "l"}, full[1][0].Keys())
	assert.Equal(t, "hidden", keys.Hidden.Help().Desc)
}
