// Package styles renders CLI output with lipgloss.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors a Theme is built from. The defaults match the
// kiosk's on-screen overlays so doctor output and the device look alike.
type Palette struct {
	Text    string
	Muted   string
	Accent  string
	Border  string
	Badge   string
	Error   string
	Warning string
	Success string
}

// DefaultPalette returns the dark palette used by every command.
func DefaultPalette() Palette {
	return Palette{
		Text:    "#e8eaed",
		Muted:   "#8a8f98",
		Accent:  "#4c8dff",
		Border:  "#30343b",
		Badge:   "#262a31",
		Error:   "#ef4444",
		Warning: "#f59e0b",
		Success: "#22c55e",
	}
}

// Theme holds the lipgloss styles shared by the renderers.
type Theme struct {
	Accent lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	BadgeMuted   lipgloss.Style
	Box          lipgloss.Style
	BoxHeader    lipgloss.Style
}

// NewTheme creates the default theme.
func NewTheme() *Theme {
	return NewThemeFromPalette(DefaultPalette())
}

// NewThemeFromPalette builds every style from p.
func NewThemeFromPalette(p Palette) *Theme {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	border := lipgloss.Color(p.Border)

	return &Theme{
		Accent: lipgloss.Color(p.Accent),

		Title:        fg(p.Text).Bold(true),
		Normal:       fg(p.Text),
		Subtle:       fg(p.Muted),
		Highlight:    fg(p.Accent).Bold(true),
		ErrorStyle:   fg(p.Error),
		WarningStyle: fg(p.Warning),
		SuccessStyle: fg(p.Success),
		BadgeMuted:   fg(p.Text).Background(lipgloss.Color(p.Badge)).Padding(0, 1),
		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2),
		BoxHeader: fg(p.Text).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(border).
			MarginBottom(1),
	}
}
