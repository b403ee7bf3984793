package theme

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme styles the lines of a prune report.
type Theme struct {
	Remove   lipgloss.Style
	Move     lipgloss.Style
	Path     lipgloss.Style
	Arrow    lipgloss.Style
	DryRun   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	DiffAdd  lipgloss.Style
	DiffDel  lipgloss.Style
	DiffHunk lipgloss.Style
}

func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Remove:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Move:     r.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true),
		Path:     r.NewStyle().Foreground(lipgloss.Color("#dcd7ff")),
		Arrow:    r.NewStyle().Foreground(lipgloss.Color("#867CC1")),
		DryRun:   r.NewStyle().Foreground(lipgloss.Color("#FF8B39")),
		Success:  r.NewStyle().Foreground(lipgloss.Color("#5FB3B3")).Bold(true),
		Error:    r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		DiffAdd:  r.NewStyle().Foreground(lipgloss.Color("#5FB3B3")),
		DiffDel:  r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		DiffHunk: r.NewStyle().Foreground(lipgloss.Color("#A6A1BB")),
	}
}

// ForWriter builds the default theme for w. Colors are dropped when color
// is false or NO_COLOR is set; termenv also drops them for non-terminals.
func ForWriter(w io.Writer, color bool) Theme {
	r := lipgloss.NewRenderer(w)
	if !color || termenv.EnvNoColor() {
		r.SetColorProfile(termenv.Ascii)
	}
	return DefaultTheme(r)
}

// Plain returns a theme that renders text unchanged.
func Plain() Theme {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return DefaultTheme(r)
}

// RenderDiff colors the lines of a unified diff.
func (t Theme) RenderDiff(diff string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(diff, "\n") {
		body := strings.TrimSuffix(line, "\n")
		nl := line[len(body):]
		switch {
		case body == "":
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"), strings.HasPrefix(body, "@@"):
			body = t.DiffHunk.Render(body)
		case strings.HasPrefix(body, "+"):
			body = t.DiffAdd.Render(body)
		case strings.HasPrefix(body, "-"):
			body = t.DiffDel.Render(body)
		}
		b.WriteString(body)
		b.WriteString(nl)
	}
	return b.String()
}
