package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphiz/internal/ui/theme"
)

// ContentWidth returns the inner width shared by every panel section so
// stacked boxes line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

// Panel wraps content in a double border centred inside width x height.
func Panel(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded card at content width cw.
func Card(content string, cw int) string {
	return theme.Card.
		Width(max(cw-2, 0)).
		Render(content)
}

// Banner renders a one-line highlighted notice, such as an unlock.
func Banner(text string, cw int) string {
	return theme.Banner.
		Width(max(cw-2, 0)).
		Align(lipgloss.Center).
		Render(text)
}

// Pill renders a full-width selectable block.
func Pill(label string, selected bool, width int) string {
	st := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if selected {
		return st.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Primary).
			BorderForeground(theme.Primary).
			Render("▸ " + label)
	}
	return st.
		Foreground(theme.Text).
		BorderForeground(theme.Border).
		Render(label)
}
