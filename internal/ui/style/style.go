// Package style provides the shared colors and icons used by the mountbar CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
	Arrow   = "→"
)

// MountIcon returns the menu bar style indicator for a mount state.
func MountIcon(mounted bool) string {
	if mounted {
		return Dot
	}
	return Circle
}

// MountColor returns the color paired with MountIcon.
func MountColor(mounted bool) lipgloss.Color {
	if mounted {
		return Green
	}
	return Slate
}
