// Package styles holds the palette and styling helpers of the terminal views.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette colors.
const (
	Primary   = lipgloss.Color("#A78BFA") // floating window accent
	Secondary = lipgloss.Color("#F59E0B")
	Muted     = lipgloss.Color("240")
	Text      = lipgloss.Color("252")
	Error     = lipgloss.Color("196")
)
