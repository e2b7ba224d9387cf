package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Productivity colors, most to least productive
const (
	ColorVeryProductive  Color = "34"  // Green
	ColorProductive      Color = "114" // Light green
	ColorNeutral         Color = "220" // Yellow
	ColorDistracting     Color = "208" // Orange
	ColorVeryDistracting Color = "196" // Red
)

// Goal state colors
const (
	ColorFailed  Color = "1"   // Red
	ColorPaused  Color = "8"   // Gray
	ColorPartial Color = "3"   // Yellow
	ColorSuccess Color = "2"   // Green
	ColorNA      Color = "245" // Light gray
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
)
