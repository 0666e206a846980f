package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"foldersize/internal/annotate"
	"foldersize/internal/config"
	"foldersize/internal/domain"
	"foldersize/internal/services"
	"foldersize/internal/state"
)

type Model struct {
	state     *state.State
	scanner   services.Scanner
	snapshot  services.SnapshotProvider
	annotator *annotate.Annotator
	base      config.Config
	keys      KeyMap
	help      help.Model
	spinner   spinner.Model
	showHelp  bool
	status    string
	scanning  bool
	progress  chan services.ScanProgress
	stats     services.Stats
	width     int
	height    int
	viewTop   int
}

type ConfigProvider interface {
	ConfigSnapshot() config.Config
}

// NewModel returns a model that starts scanning appState.Path as soon as the
// program runs.
func NewModel(appState *state.State, scanner services.Scanner, annotator *annotate.Annotator, base config.Config) Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	model := Model{
		state:     appState,
		scanner:   scanner,
		snapshot:  snapshotProvider(scanner),
		annotator: annotator,
		base:      base,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   spin,
		width:     100,
		height:    30,
	}
	model.scanning = true
	model.progress = make(chan services.ScanProgress, 64)
	model.status = fmt.Sprintf("Scanning... %s", appState.Path)
	return model
}

func (model Model) WithStatus(message string) Model {
	if message != "" {
		model.status = message
	}
	return model
}

// ConfigSnapshot is the base configuration with the view preferences changed
// during the session.
func (model Model) ConfigSnapshot() config.Config {
	cfg := model.base
	cfg.ShowHidden = model.state.Prefs.ShowHidden
	cfg.HideComments = model.state.Prefs.HideComments
	cfg.PageSize = model.state.Prefs.PageSize
	cfg.Theme = model.state.Prefs.Theme
	return cfg
}

func (model Model) Init() tea.Cmd {
	if !model.scanning {
		return nil
	}
	return tea.Batch(model.scanCmd(model.state.Path, model.progress), model.progressCmd(model.progress), model.spinner.Tick)
}

func (model Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return model.handleKey(typed)
	case tea.WindowSizeMsg:
		model.width = typed.Width
		model.height = typed.Height
		model.help.Width = typed.Width
		model.ensureCursorVisible()
		return model, nil
	case spinner.TickMsg:
		if !model.scanning {
			return model, nil
		}
		var cmd tea.Cmd
		model.spinner, cmd = model.spinner.Update(typed)
		return model, cmd
	case scanProgressMsg:
		if !model.scanning || typed.closed || typed.progress.Completed {
			return model, nil
		}
		model.stats.Dirs = typed.progress.Dirs
		model.stats.Files = typed.progress.Files
		model.status = fmt.Sprintf("Scanning... %d folders, %d files (%s)", typed.progress.Dirs, typed.progress.Files, typed.progress.Current)
		return model, model.progressCmd(model.progress)
	case scanResultMsg:
		return model.finishScan(typed.result), nil
	default:
		return model, nil
	}
}

func (model Model) finishScan(result services.ScanResult) Model {
	model.scanning = false
	model.progress = nil
	model.stats = result.Stats
	tree := domain.NewTreeIndex(result.Root)
	if model.snapshot != nil {
		tree = model.snapshot.Snapshot()
	}
	model.state.Path = result.RootPath
	model.state.SetTree(tree)

	switch {
	case tree.Root != nil && tree.Root.Kind == domain.KindExcluded:
		model.status = fmt.Sprintf("Cannot read %s", result.RootPath)
	case result.Stats.Failures() > 0:
		model.status = fmt.Sprintf("Scan complete in %s, warning: %d entries could not be read", result.Duration.Round(time.Millisecond), result.Stats.Failures())
	default:
		model.status = fmt.Sprintf("Scan complete in %s (%d folders, %d files)", result.Duration.Round(time.Millisecond), result.Stats.Dirs, result.Stats.Files)
	}
	model.ensureCursorVisible()
	return model
}

func (model Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, model.keys.Quit):
		return model, tea.Quit
	case key.Matches(msg, model.keys.Help):
		model.showHelp = !model.showHelp
		model.help.ShowAll = model.showHelp
		return model, nil
	case key.Matches(msg, model.keys.Rescan):
		return model.beginScan()
	}

	if model.state.CurrentEntry() == nil {
		return model, nil
	}

	switch {
	case key.Matches(msg, model.keys.Up):
		model.state.MoveCursor(-1)
	case key.Matches(msg, model.keys.Down):
		model.state.MoveCursor(1)
	case key.Matches(msg, model.keys.PageUp):
		model.state.MoveCursor(-model.listHeight())
	case key.Matches(msg, model.keys.PageDown):
		model.state.MoveCursor(model.listHeight())
	case key.Matches(msg, model.keys.Open):
		model.state.Activate()
	case key.Matches(msg, model.keys.Back):
		model.state.Back()
	case key.Matches(msg, model.keys.Hidden):
		if model.state.ToggleShowHidden() {
			model.status = "Showing hidden entries"
		} else {
			model.status = "Hiding hidden entries"
		}
	case key.Matches(msg, model.keys.Comments):
		if model.state.ToggleComments() {
			model.status = "Comments on"
		} else {
			model.status = "Comments off"
		}
	}
	model.ensureCursorVisible()
	return model, nil
}

func (model Model) beginScan() (Model, tea.Cmd) {
	if model.scanning {
		return model, nil
	}
	model.scanning = true
	model.progress = make(chan services.ScanProgress, 64)
	model.stats = services.Stats{}
	model.status = fmt.Sprintf("Scanning... %s", model.state.Path)
	return model, tea.Batch(model.scanCmd(model.state.Path, model.progress), model.progressCmd(model.progress), model.spinner.Tick)
}

func (model Model) scanCmd(path string, progress chan services.ScanProgress) tea.Cmd {
	request := services.ScanRequest{
		RootPath: path,
		Progress: progress,
	}
	scanner := model.scanner
	return func() tea.Msg {
		return scanResultMsg{result: scanner.Scan(request)}
	}
}

func (model Model) progressCmd(progress <-chan services.ScanProgress) tea.Cmd {
	if progress == nil {
		return nil
	}
	return func() tea.Msg {
		update, ok := <-progress
		if !ok {
			return scanProgressMsg{closed: true}
		}
		return scanProgressMsg{progress: update}
	}
}

func snapshotProvider(scanner services.Scanner) services.SnapshotProvider {
	provider, _ := scanner.(services.SnapshotProvider)
	return provider
}

func (model *Model) ensureCursorVisible() {
	rows := model.state.Rows()
	if len(rows) == 0 {
		model.viewTop = 0
		return
	}
	listHeight := model.listHeight()
	if listHeight <= 0 {
		return
	}
	cursor := model.state.Cursor
	if cursor < model.viewTop {
		model.viewTop = cursor
	}
	if cursor >= model.viewTop+listHeight {
		model.viewTop = cursor - listHeight + 1
	}
	maxTop := len(rows) - listHeight
	if maxTop < 0 {
		maxTop = 0
	}
	if model.viewTop > maxTop {
		model.viewTop = maxTop
	}
}

func (model *Model) listHeight() int {
	height := model.height - 5
	if model.showHelp {
		height -= 4
	}
	if height < 1 {
		return 1
	}
	return height
}
