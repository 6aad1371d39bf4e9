package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - section headers
)

// Trigger colors
const (
	ColorChord    Color = "214" // Orange - cmd+N
	ColorDock     Color = "33"  // Blue - dock fallback
	ColorFunction Color = "226" // Yellow - fN
	ColorTriplet  Color = "46"  // Green - aaa
)

// UI semantic colors
const (
	ColorError   Color = "196" // Bright red
	ColorMuted   Color = "241" // Gray - rules, empty sections
	ColorNormal  Color = "250" // Default text
	ColorVersion Color = "240" // Dark gray
)
