// Package theme turns the operator's preferences into terminal styles.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joefazee/directory-admin/internal/formatter"
	"github.com/joefazee/directory-admin/internal/i18n"
	"github.com/joefazee/directory-admin/internal/prefs"
)

type Palette struct {
	Foreground lipgloss.Color
	Secondary  lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Divider    lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
}

var (
	lightPalette = Palette{
		Foreground: lipgloss.Color("#1e293b"),
		Secondary:  lipgloss.Color("#64748b"),
		Primary:    lipgloss.Color("#4f46e5"),
		Accent:     lipgloss.Color("#7c3aed"),
		Divider:    lipgloss.Color("#e2e8f0"),
		Error:      lipgloss.Color("#ef4444"),
		Success:    lipgloss.Color("#22c55e"),
		Warning:    lipgloss.Color("#f59e0b"),
	}
	darkPalette = Palette{
		Foreground: lipgloss.Color("#f8fafc"),
		Secondary:  lipgloss.Color("#94a3b8"),
		Primary:    lipgloss.Color("#818cf8"),
		Accent:     lipgloss.Color("#a78bfa"),
		Divider:    lipgloss.Color("#334155"),
		Error:      lipgloss.Color("#fca5a5"),
		Success:    lipgloss.Color("#86efac"),
		Warning:    lipgloss.Color("#fcd34d"),
	}
)

func PaletteFor(t prefs.Theme) Palette {
	if t == prefs.Dark {
		return darkPalette
	}
	return lightPalette
}

// Styles are the rendered building blocks of CLI output.
type Styles struct {
	Palette   Palette
	Direction i18n.Direction

	Title   lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

func New(p prefs.Preferences) Styles {
	pal := PaletteFor(p.Theme)
	align := lipgloss.Left
	if p.Language.Direction() == i18n.RTL {
		align = lipgloss.Right
	}

	base := lipgloss.NewStyle().Foreground(pal.Foreground).Align(align)
	return Styles{
		Palette:   pal,
		Direction: p.Language.Direction(),
		Title:     base.Bold(true).Foreground(pal.Primary),
		Header:    base.Bold(true).Foreground(pal.Accent),
		Cell:      base,
		Muted:     base.Foreground(pal.Secondary),
		Success:   base.Foreground(pal.Success),
		Error:     base.Foreground(pal.Error),
		Warning:   base.Foreground(pal.Warning),
	}
}

// Rating colours a rating by its tier.
func (s Styles) Rating(tier formatter.RatingTier) lipgloss.Style {
	switch tier {
	case formatter.RatingExcellent:
		return s.Success
	case formatter.RatingGood:
		return s.Warning
	default:
		return s.Error
	}
}

// Table renders rows as aligned columns. RTL output reverses column order so
// the first column reads from the right edge.
func (s Styles) Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	render := func(style lipgloss.Style, cells []string) string {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = style.Width(widths[i]).Render(cell)
		}
		if s.Direction == i18n.RTL {
			for l, r := 0, len(parts)-1; l < r; l, r = l+1, r-1 {
				parts[l], parts[r] = parts[r], parts[l]
			}
		}
		return strings.Join(parts, "  ")
	}

	var b strings.Builder
	b.WriteString(render(s.Header, headers))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(render(s.Cell, row))
		b.WriteString("\n")
	}
	return b.String()
}
