package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"foldersize/internal/annotate"
	"foldersize/internal/domain"
	"foldersize/internal/units"
)

type ReportOptions struct {
	// Depth is how many directory levels are listed. Values below 1 list one.
	Depth int
	// Top limits the entries listed per directory; 0 lists all of them.
	Top          int
	ShowHidden   bool
	HideComments bool
}

// WriteReport prints root's size followed by its children, largest first.
func WriteReport(w io.Writer, root *domain.Entry, notes *annotate.Annotator, opts ReportOptions) error {
	if root == nil {
		return errors.New("nothing was scanned")
	}
	size, ok := root.Size()
	if !ok {
		_, err := fmt.Fprintf(w, "%s: cannot be read\n", root.Path)
		return err
	}
	if opts.Depth < 1 {
		opts.Depth = 1
	}

	var out strings.Builder
	fmt.Fprintf(&out, "%s, size: %s (%s)\n", root.Path, units.FormatSize(size), units.ExactBytes(size))
	writeChildren(&out, root, notes, opts, 0)
	_, err := io.WriteString(w, out.String())
	return err
}

func writeChildren(out *strings.Builder, parent *domain.Entry, notes *annotate.Annotator, opts ReportOptions, depth int) {
	children := parent.Children()
	if !opts.ShowHidden {
		visible := make([]*domain.Entry, 0, len(children))
		for _, child := range children {
			if !child.Hidden {
				visible = append(visible, child)
			}
		}
		children = visible
	}
	shown := children
	if opts.Top > 0 && len(shown) > opts.Top {
		shown = shown[:opts.Top]
	}

	indent := strings.Repeat("  ", depth)
	for _, child := range shown {
		line := fmt.Sprintf("%10s  %s%s", reportSize(child), indent, child.Name())
		if !opts.HideComments && notes != nil {
			if comment := notes.ForEntry(child); comment != "" {
				line += "  # " + comment
			}
		}
		out.WriteString(line + "\n")
		if child.IsDir() && depth+1 < opts.Depth {
			writeChildren(out, child, notes, opts, depth+1)
		}
	}
	if rest := len(children) - len(shown); rest > 0 {
		fmt.Fprintf(out, "%10s  %s… %d more\n", "", indent, rest)
	}
}

func reportSize(entry *domain.Entry) string {
	switch entry.Kind {
	case domain.KindLink:
		return "link"
	case domain.KindExcluded:
		return "excluded"
	default:
		return units.FormatSize(entry.SizeOrZero())
	}
}
