package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// ConfigEntry is one effective setting.
type ConfigEntry struct {
	Key   string
	Value string
}

// ConfigSection groups the entries of one TOML table.
type ConfigSection struct {
	Name    string
	Entries []ConfigEntry
}

// RenderPath renders the config file location.
func (r *ConfigRenderer) RenderPath(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("  %s Config %s", iconStyle.Render(IconConfig), r.theme.Subtle.Render(path))
}

// RenderSections renders the effective configuration, one table per section.
func (r *ConfigRenderer) RenderSections(sections []ConfigSection) string {
	keyWidth := 0
	for _, s := range sections {
		for _, e := range s.Entries {
			keyWidth = max(keyWidth, lipgloss.Width(e.Key))
		}
	}
	keyStyle := r.theme.Subtle.Width(keyWidth)

	var sb strings.Builder
	for i, s := range sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(r.theme.Highlight.Render("[" + s.Name + "]"))
		sb.WriteString("\n")
		for _, e := range s.Entries {
			sb.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(e.Key), r.theme.Normal.Render(e.Value)))
		}
	}
	return sb.String()
}

// RenderWarning renders a non-fatal problem, such as a config file that
// failed to load.
func (r *ConfigRenderer) RenderWarning(err error) string {
	return fmt.Sprintf("  %s %s", r.theme.WarningStyle.Render(IconWarning), r.theme.WarningStyle.Render(err.Error()))
}
