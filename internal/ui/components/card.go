package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/learncode/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked sections so
// boxes line up.
func ContentWidth(frameWidth int) int {
	// Leave room for border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 76 {
		w = 76
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(0, 1).
		Render(content)
}

// Centered places content in the middle of a width x height area.
func Centered(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Message renders a single dim or error line centered horizontally.
func Message(text string, width int, isErr bool) string {
	color := theme.TextDim
	if isErr {
		color = theme.Error
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(color).
		Render("\n\n" + text)
}
