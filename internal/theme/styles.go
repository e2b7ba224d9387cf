package theme

import "github.com/charmbracelet/lipgloss"

// Main styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Chart styles
var (
	ChartAxisStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ChartLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	ChartLegendStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)
)

// Goal state styles
var (
	FailedStyle = lipgloss.NewStyle().
			Foreground(ColorFailed).
			Bold(true)

	NAStyle = lipgloss.NewStyle().
		Foreground(ColorNA)

	PartialStyle = lipgloss.NewStyle().
			Foreground(ColorPartial)

	PausedStyle = lipgloss.NewStyle().
			Foreground(ColorPaused)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// ScoreStyle returns the style of a productivity score in [0, 1].
// The thresholds sit halfway between the level scores.
func ScoreStyle(score float64) lipgloss.Style {
	var c Color
	switch {
	case score >= 0.9:
		c = ColorVeryProductive
	case score >= 0.7:
		c = ColorProductive
	case score >= 0.5:
		c = ColorNeutral
	case score >= 0.3:
		c = ColorDistracting
	default:
		c = ColorVeryDistracting
	}
	return lipgloss.NewStyle().Foreground(c)
}
