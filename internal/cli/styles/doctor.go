package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DoctorRenderer renders `kiosk doctor` results.
type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

type DoctorReport struct {
	OverallOK bool
	Sections  []DoctorSection
}

// DoctorSection is one boxed group of checks.
type DoctorSection struct {
	Title  string
	Icon   string
	Checks []DoctorCheck
}

type DoctorCheck struct {
	Name   string
	OK     bool
	Detail string
	Error  string
	// Missing marks a check whose subject was not found at all, as opposed
	// to found but failing.
	Missing bool
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	header := r.renderHeader(report.OverallOK)

	sections := make([]string, 0, len(report.Sections))
	for _, s := range report.Sections {
		if len(s.Checks) == 0 {
			continue
		}
		sections = append(sections, r.renderSection(s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", strings.Join(sections, "\n\n"))
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderSection(s DoctorSection) string {
	lines := make([]string, 0, len(s.Checks))
	for _, c := range s.Checks {
		lines = append(lines, r.renderCheck(c))
	}

	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s %s", r.theme.Highlight.Render(s.Icon), s.Title))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

func (r *DoctorRenderer) renderCheck(c DoctorCheck) string {
	icon := IconCheck
	statusStyle := r.theme.SuccessStyle
	status := "OK"
	summary := c.Detail

	switch {
	case c.Missing:
		icon = IconX
		statusStyle = r.theme.ErrorStyle
		status = "Missing"
		summary = c.Error
	case !c.OK:
		icon = IconWarning
		statusStyle = r.theme.WarningStyle
		status = "Failed"
		summary = strings.TrimSpace(strings.Join([]string{c.Detail, c.Error}, " "))
	}

	name := r.theme.Normal.Render(c.Name)
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(status))
	info := r.theme.Subtle.Render(summary)

	return fmt.Sprintf("%s %s %s\n  %s", statusStyle.Render(icon), name, badge, info)
}
