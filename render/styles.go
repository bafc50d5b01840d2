package render

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StylePivot marks the pivot cell.
	StylePivot = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)

	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleKey    = lipgloss.NewStyle().Foreground(colorGray).Width(14)
	styleCell   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// statusStyle colours a solution type: green when optimal, red when the
// program has no optimum, yellow otherwise.
func statusStyle(ok, failed bool) lipgloss.Style {
	switch {
	case ok:
		return lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	case failed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	default:
		return lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	}
}
