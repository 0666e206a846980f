package state

import (
	"foldersize/internal/config"
	"foldersize/internal/domain"
)

type Preferences struct {
	ShowHidden   bool
	HideComments bool
	PageSize     int
	Theme        string
}

// State is the navigation state of the explorer. The tree itself is never
// modified; everything here is a view over it.
type State struct {
	Path     string
	Current  string
	Cursor   int
	Pages    int
	Expanded map[string]bool
	Prefs    Preferences
	Tree     domain.TreeIndex
}

type RowKind int

const (
	RowEntry RowKind = iota
	RowBack
	RowMore
)

// Row is one line of the listing. Depth is 1 for files shown inside an
// expanded rollup.
type Row struct {
	Kind  RowKind
	Entry *domain.Entry
	Depth int
}

func NewState(cfg config.Config) *State {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = config.DefaultConfig().PageSize
	}
	return &State{
		Path:     cfg.Path,
		Pages:    1,
		Expanded: make(map[string]bool),
		Prefs: Preferences{
			ShowHidden:   cfg.ShowHidden,
			HideComments: cfg.HideComments,
			PageSize:     pageSize,
			Theme:        cfg.Theme,
		},
	}
}

// SetTree installs a freshly scanned tree. The current directory is kept when
// it still exists, otherwise the nearest surviving ancestor is shown.
func (appState *State) SetTree(tree domain.TreeIndex) {
	appState.Tree = tree
	if tree.Root == nil {
		appState.Current = ""
		appState.Cursor = 0
		return
	}
	target := appState.Current
	if target == "" {
		target = tree.Root.Path
	}
	found := tree.Find(target)
	if found.Path != appState.Current {
		appState.Cursor = 0
		appState.Pages = 1
	}
	appState.Current = found.Path

	expanded := make(map[string]bool, len(appState.Expanded))
	for path := range appState.Expanded {
		if entry := tree.Find(path); entry.Path == path && entry.IsDir() {
			expanded[path] = true
		}
	}
	appState.Expanded = expanded
	appState.clampCursor()
}

func (appState *State) CurrentEntry() *domain.Entry {
	if appState.Tree.Root == nil {
		return nil
	}
	return appState.Tree.Find(appState.Current)
}

func (appState *State) IsRootView() bool {
	return appState.Tree.Root != nil && appState.Current == appState.Tree.Root.Path
}

// Rows lists the current directory: a back row unless at the root, up to
// PageSize*Pages children, then a more row if children remain. Files of an
// expanded rollup count toward the page.
func (appState *State) Rows() []Row {
	current := appState.CurrentEntry()
	if current == nil {
		return nil
	}
	var rows []Row
	if !appState.IsRootView() {
		rows = append(rows, Row{Kind: RowBack})
	}

	limit := appState.Prefs.PageSize * appState.Pages
	shown := 0
	for _, child := range appState.visibleChildren(current) {
		if shown >= limit {
			rows = append(rows, Row{Kind: RowMore})
			break
		}
		shown++
		rows = append(rows, Row{Kind: RowEntry, Entry: child})
		if child.Kind == domain.KindRollup && appState.Expanded[current.Path] {
			for _, absorbed := range appState.visibleChildren(child) {
				if shown >= limit {
					return append(rows, Row{Kind: RowMore})
				}
				shown++
				rows = append(rows, Row{Kind: RowEntry, Entry: absorbed, Depth: 1})
			}
		}
	}
	return rows
}

func (appState *State) visibleChildren(entry *domain.Entry) []*domain.Entry {
	children := entry.Children()
	if appState.Prefs.ShowHidden {
		return children
	}
	visible := make([]*domain.Entry, 0, len(children))
	for _, child := range children {
		if !child.Hidden {
			visible = append(visible, child)
		}
	}
	return visible
}

func (appState *State) SelectedRow() (Row, bool) {
	rows := appState.Rows()
	if appState.Cursor < 0 || appState.Cursor >= len(rows) {
		return Row{}, false
	}
	return rows[appState.Cursor], true
}

func (appState *State) MoveCursor(delta int) {
	appState.Cursor += delta
	appState.clampCursor()
}

func (appState *State) CursorTo(index int) {
	appState.Cursor = index
	appState.clampCursor()
}

func (appState *State) clampCursor() {
	count := len(appState.Rows())
	if appState.Cursor >= count {
		appState.Cursor = count - 1
	}
	if appState.Cursor < 0 {
		appState.Cursor = 0
	}
}

// Activate performs the action of the selected row and reports whether
// anything changed.
func (appState *State) Activate() bool {
	row, ok := appState.SelectedRow()
	if !ok {
		return false
	}
	switch row.Kind {
	case RowBack:
		return appState.Back()
	case RowMore:
		appState.Pages++
		return true
	}
	switch row.Entry.Kind {
	case domain.KindFolder:
		return appState.Enter(row.Entry.Path)
	case domain.KindRollup:
		appState.ToggleExpanded(row.Entry.Path)
		return true
	default:
		return false
	}
}

// Enter shows the folder at path if it has anything to list.
func (appState *State) Enter(path string) bool {
	entry := appState.Tree.Find(path)
	if entry == nil || entry.Path != path || !entry.IsDir() || !entry.HasChildren() {
		return false
	}
	appState.Current = path
	appState.Cursor = 0
	appState.Pages = 1
	return true
}

// Back moves to the parent directory and puts the cursor on the directory
// that was left, loading enough pages to show it.
func (appState *State) Back() bool {
	parent, ok := appState.Tree.Parent(appState.Current)
	if !ok {
		return false
	}
	left := appState.Current
	appState.Current = appState.Tree.Find(parent).Path
	appState.Cursor = 0
	appState.Pages = 1

	for index, child := range appState.visibleChildren(appState.CurrentEntry()) {
		if child.Path == left {
			appState.Pages = index/appState.Prefs.PageSize + 1
			appState.Cursor = appState.rowIndex(left)
			break
		}
	}
	return true
}

func (appState *State) rowIndex(path string) int {
	for index, row := range appState.Rows() {
		if row.Kind == RowEntry && row.Depth == 0 && row.Entry.Path == path {
			return index
		}
	}
	return 0
}

func (appState *State) ToggleExpanded(path string) bool {
	appState.Expanded[path] = !appState.Expanded[path]
	if !appState.Expanded[path] {
		delete(appState.Expanded, path)
		appState.clampCursor()
		return false
	}
	return true
}

func (appState *State) ToggleShowHidden() bool {
	appState.Prefs.ShowHidden = !appState.Prefs.ShowHidden
	appState.clampCursor()
	return appState.Prefs.ShowHidden
}

func (appState *State) ToggleComments() bool {
	appState.Prefs.HideComments = !appState.Prefs.HideComments
	return !appState.Prefs.HideComments
}
