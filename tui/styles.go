package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/zenfocus/timer"
)

const (
	padding  = 2
	maxWidth = 80
)

// Style holds every style used by the views.
type Style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Error     lipgloss.Style
	Modes     map[timer.Mode]lipgloss.Style
}

// NewStyle returns the palette for a dark or light terminal.
func NewStyle(dark bool) Style {
	main := lipgloss.Color("#FFFDF5")
	secondary := lipgloss.Color("#A8A8A8")
	hint := lipgloss.Color("#666666")

	if !dark {
		main = lipgloss.Color("#1A1A1A")
		secondary = lipgloss.Color("#4A4A4A")
		hint = lipgloss.Color("#8A8A8A")
	}

	badge := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFDF5")).
		Padding(0, 1).
		MarginRight(1)

	return Style{
		Base:      lipgloss.NewStyle().Padding(1, padding),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(main),
		Secondary: lipgloss.NewStyle().Foreground(secondary),
		Hint:      lipgloss.NewStyle().Foreground(hint),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		Modes: map[timer.Mode]lipgloss.Style{
			timer.Work: badge.
				Background(lipgloss.Color("#F25D94")).
				SetString(timer.Work.Label()),
			timer.ShortBreak: badge.
				Background(lipgloss.Color("#00A36C")).
				SetString(timer.ShortBreak.Label()),
			timer.LongBreak: badge.
				Background(lipgloss.Color("#3E7CB1")).
				SetString(timer.LongBreak.Label()),
		},
	}
}
