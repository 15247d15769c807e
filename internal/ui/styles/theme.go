// Package styles holds the colour palette shared by the terminal views.
package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a palette plus the styles derived from it.
type Theme struct {
	Primary   lipgloss.Color // current track, active modes, loud end of meters
	Secondary lipgloss.Color // equalizer readout, quiet end of meters

	Text, Dim, Faint lipgloss.Color
	Highlight        lipgloss.Color
	Frame            lipgloss.Color

	Ok, Fail, Caution lipgloss.Color

	once   sync.Once
	styles Styles
}

// Styles are the lipgloss styles every view draws with.
type Styles struct {
	Base, Muted, Subtle lipgloss.Style
	Title, Playing      lipgloss.Style
	Cursor, Accent      lipgloss.Style
	Panel               lipgloss.Style

	Success, Error, Warning lipgloss.Style
}

var ferrous = Theme{
	Primary:   "#e07a3f",
	Secondary: "#7fb4ca",
	Text:      "#c0c0c0",
	Dim:       "#808080",
	Faint:     "#585858",
	Highlight: "#303030",
	Frame:     "#585858",
	Ok:        "#42b883",
	Fail:      "#ff5555",
	Caution:   "#f1a208",
}

// T returns the active theme.
func T() *Theme { return &ferrous }

// S returns the styles for t, building them on first use.
func (t *Theme) S() *Styles {
	t.once.Do(func() {
		fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
		t.styles = Styles{
			Base:    fg(t.Text),
			Muted:   fg(t.Dim),
			Subtle:  fg(t.Faint),
			Title:   fg(t.Text).Bold(true),
			Playing: fg(t.Primary).Bold(true),
			Cursor:  fg(t.Text).Background(t.Highlight),
			Accent:  fg(t.Secondary),
			Panel: lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(t.Frame),
			Success: fg(t.Ok),
			Error:   fg(t.Fail),
			Warning: fg(t.Caution),
		}
	})
	return &t.styles
}
