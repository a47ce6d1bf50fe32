// Package tui builds the lipgloss style set the preview application
// renders with, resolving every color through the theme engine so the
// styles track variant switches and runtime overrides.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"themekit/internal/theme"
)

// Styles holds the styled components for the preview UI.
type Styles struct {
	Header    lipgloss.Style
	Footer    lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Muted     lipgloss.Style
	Selected  lipgloss.Style
	Swatch    lipgloss.Style
	Pane      lipgloss.Style
	ErrorText lipgloss.Style
	WarnText  lipgloss.Style
	WarnBox   lipgloss.Style
}

// New derives the style set from the engine's current effective tree.
// Call it again after any variant change; styles are cheap to rebuild.
func New(e *theme.Engine) Styles {
	bg := lipgloss.Color(e.Color("background"))
	surface := lipgloss.Color(e.Color("surface"))
	primary := lipgloss.Color(e.Color("primary"))
	text := lipgloss.Color(e.Color("text.primary"))
	muted := lipgloss.Color(e.Color("text.secondary"))
	border := lipgloss.Color(e.Color("border"))

	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(bg).
			Background(primary).
			Bold(true).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(muted).
			Width(24),
		Value: lipgloss.NewStyle().
			Foreground(text),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
		Selected: lipgloss.NewStyle().
			Foreground(bg).
			Background(primary).
			Bold(true),
		Swatch: lipgloss.NewStyle().
			Background(surface).
			Padding(0, 1),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border).
			Padding(0, 1),
		ErrorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(e.Color("error"))).
			Bold(true),
		WarnText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(e.Color("warning"))),
		WarnBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(e.Color("warning"))).
			Padding(0, 1),
	}
}

// WrapFindings word-wraps validator findings to fit a pane width.
func WrapFindings(findings []string, width int) []string {
	if width <= 0 {
		return findings
	}
	wrapped := make([]string, 0, len(findings))
	for _, f := range findings {
		wrapped = append(wrapped, wordwrap.String(f, width))
	}
	return wrapped
}
