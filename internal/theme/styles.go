package theme

import "github.com/charmbracelet/lipgloss"

// SheetWidth is the width of the cheat sheet banner and rules
const SheetWidth = 60

// Styles holds the styles bound to one renderer, so output written to a
// pipe or a buffer gets the right color profile
type Styles struct {
	Banner  lipgloss.Style
	Chord   lipgloss.Style
	Desc    lipgloss.Style
	Dock    lipgloss.Style
	Empty   lipgloss.Style
	Error   lipgloss.Style
	Func    lipgloss.Style
	Rule    lipgloss.Style
	Section lipgloss.Style
	Triplet lipgloss.Style
	Version lipgloss.Style
}

// NewStyles builds the styles for r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Banner: r.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Width(SheetWidth).
			Align(lipgloss.Center),

		Chord: r.NewStyle().
			Foreground(ColorChord).
			Bold(true),

		Desc: r.NewStyle().
			Foreground(ColorNormal),

		Dock: r.NewStyle().
			Foreground(ColorDock).
			Bold(true),

		Empty: r.NewStyle().
			Foreground(ColorMuted).
			Italic(true),

		Error: r.NewStyle().
			Foreground(ColorError),

		Func: r.NewStyle().
			Foreground(ColorFunction).
			Bold(true),

		Rule: r.NewStyle().
			Foreground(ColorMuted),

		Section: r.NewStyle().
			Bold(true).
			Foreground(ColorSecondary).
			MarginTop(1),

		Triplet: r.NewStyle().
			Foreground(ColorTriplet).
			Bold(true),

		Version: r.NewStyle().
			Foreground(ColorVersion),
	}
}
