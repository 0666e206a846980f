package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"foldersize/internal/color"
	"foldersize/internal/config"
	"foldersize/internal/domain"
	"foldersize/internal/state"
	"foldersize/internal/units"
)

const (
	backLabel = "⮬.."
	moreLabel = "⮯ more…"
	sizeWidth = 10
)

type uiStyles struct {
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
	statusStyle  lipgloss.Style
	warnStyle    lipgloss.Style
	cursorStyle  lipgloss.Style
	commentStyle lipgloss.Style
	light        bool
}

func stylesFor(model Model) uiStyles {
	if strings.ToLower(model.state.Prefs.Theme) == config.ThemeLight {
		return uiStyles{
			headerStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
			mutedStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			statusStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
			warnStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
			cursorStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("90")).Bold(true),
			commentStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
			light:        true,
		}
	}
	return uiStyles{
		headerStyle:  lipgloss.NewStyle().Bold(true),
		mutedStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		statusStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true),
		warnStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
		cursorStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		commentStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	}
}

func (model Model) View() string {
	styles := stylesFor(model)
	lines := []string{renderHeader(model, styles)}
	lines = append(lines, renderList(model, styles)...)
	lines = append(lines, renderStatus(model, styles), model.help.View(model.keys))
	return strings.Join(lines, "\n")
}

func renderHeader(model Model, styles uiStyles) string {
	current := model.state.CurrentEntry()
	if current == nil {
		return styles.headerStyle.Render(model.state.Path)
	}
	size, ok := current.Size()
	if !ok {
		return styles.headerStyle.Render(current.Path)
	}
	left := styles.headerStyle.Render(fmt.Sprintf("%s, size: %s", current.Path, units.FormatSize(size)))
	return padLine(left, styles.mutedStyle.Render(units.ExactBytes(size)), model.width)
}

func renderList(model Model, styles uiStyles) []string {
	height := model.listHeight()
	rows := model.state.Rows()
	if len(rows) == 0 {
		message := "Nothing to show"
		if model.scanning {
			message = "Scanning..."
		}
		lines := []string{styles.mutedStyle.Render(message)}
		for len(lines) < height {
			lines = append(lines, "")
		}
		return lines
	}

	start := clamp(model.viewTop, 0, maxInt(len(rows)-1, 0))
	end := start + height
	if end > len(rows) {
		end = len(rows)
	}
	nameWidth, commentWidth := columnWidths(model)
	lines := make([]string, 0, height)
	for index := start; index < end; index++ {
		lines = append(lines, renderRow(model, styles, rows[index], index == model.state.Cursor, nameWidth, commentWidth))
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

// columnWidths splits what is left after the cursor marker and size column
// between names and comments.
func columnWidths(model Model) (int, int) {
	rest := maxInt(model.width-sizeWidth-3, 10)
	if model.state.Prefs.HideComments {
		return rest, 0
	}
	name := maxInt(rest*3/5, 10)
	return name, maxInt(rest-name-1, 0)
}

func renderRow(model Model, styles uiStyles, row state.Row, selected bool, nameWidth, commentWidth int) string {
	marker := "  "
	if selected {
		marker = styles.cursorStyle.Render("> ")
	}

	switch row.Kind {
	case state.RowBack:
		return marker + strings.Repeat(" ", sizeWidth+1) + backLabel
	case state.RowMore:
		return marker + strings.Repeat(" ", sizeWidth+1) + styles.mutedStyle.Render(moreLabel)
	}

	entry := row.Entry
	name := strings.Repeat("  ", row.Depth) + entry.Name()
	name = runewidth.FillRight(runewidth.Truncate(name, nameWidth, "…"), nameWidth)
	nameStyle := lipgloss.NewStyle()
	if entry.Kind == domain.KindFile || entry.Kind == domain.KindRollup {
		nameStyle = nameStyle.Italic(true)
	}
	if selected {
		nameStyle = nameStyle.Bold(true)
	}

	line := marker + sizeCell(styles, entry) + " " + nameStyle.Render(name)
	if commentWidth > 0 && model.annotator != nil {
		if comment := model.annotator.ForEntry(entry); comment != "" {
			line += " " + styles.commentStyle.Render(runewidth.Truncate(comment, commentWidth, "…"))
		}
	}
	return line
}

// sizeCell renders the right aligned size, coloured by magnitude. The light
// theme paints the background instead so pale colours stay readable.
func sizeCell(styles uiStyles, entry *domain.Entry) string {
	size, ok := entry.Size()
	if !ok {
		return styles.mutedStyle.Render(fmt.Sprintf("%*s", sizeWidth, sizeLabel(entry)))
	}
	cell := fmt.Sprintf("%*s", sizeWidth, units.FormatSize(size))
	shade := lipgloss.Color(color.ForSize(size).Hex())
	if styles.light {
		return lipgloss.NewStyle().Background(shade).Foreground(lipgloss.Color("0")).Render(cell)
	}
	return lipgloss.NewStyle().Foreground(shade).Render(cell)
}

func sizeLabel(entry *domain.Entry) string {
	switch entry.Kind {
	case domain.KindLink:
		return "link"
	case domain.KindExcluded:
		return "excluded"
	default:
		return units.FormatSize(entry.SizeOrZero())
	}
}

func renderStatus(model Model, styles uiStyles) string {
	status := trimStatus(model.status, model.width)
	statusStyle := styles.mutedStyle
	lower := strings.ToLower(model.status)
	if strings.Contains(lower, "warning") || strings.Contains(lower, "cannot") {
		statusStyle = styles.warnStyle
	}
	if model.scanning {
		return model.spinner.View() + " " + styles.statusStyle.Render(status)
	}
	hidden := "hidden: off"
	if model.state.Prefs.ShowHidden {
		hidden = "hidden: on"
	}
	return padLine(statusStyle.Render(status), styles.mutedStyle.Render(hidden), model.width)
}

func padLine(left, right string, width int) string {
	if width <= 0 {
		return left
	}
	space := width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", space) + right
}

func trimStatus(message string, width int) string {
	if width <= 0 {
		return message
	}
	max := width - 16
	if max <= 0 || runewidth.StringWidth(message) <= max {
		return message
	}
	return runewidth.Truncate(message, max, "...")
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
