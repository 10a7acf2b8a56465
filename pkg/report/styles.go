package report

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("#2E7D32")
	colorOK      = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorWarn    = lipgloss.Color("#F59E0B")
	colorMuted   = lipgloss.Color("#6B7280")
)

type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	ok      lipgloss.Style
	fail    lipgloss.Style
	warn    lipgloss.Style
	muted   lipgloss.Style
	box     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorPrimary),
		heading: r.NewStyle().Bold(true).Underline(true),
		ok:      r.NewStyle().Foreground(colorOK).Bold(true),
		fail:    r.NewStyle().Foreground(colorError).Bold(true),
		warn:    r.NewStyle().Foreground(colorWarn),
		muted:   r.NewStyle().Foreground(colorMuted),
		box:     r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1),
	}
}
