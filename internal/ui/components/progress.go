package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphiz/internal/ui/theme"
)

// ProgressBar displays a labelled ratio such as "8/10".
type ProgressBar struct {
	Label string
	Done  int
	Total int
	Width int
}

// Ratio returns Done/Total clamped to [0, 1]. Zero totals yield 0.
func (p ProgressBar) Ratio() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Done)/float64(p.Total), 0), 1)
}

// View renders the bar.
func (p ProgressBar) View() string {
	label := ""
	if p.Label != "" {
		label = theme.Body.Render(fmt.Sprintf("%-14s", p.Label)) + " "
	}
	suffix := theme.Dimmed.Render(fmt.Sprintf("  %d/%d  %3d%%", p.Done, p.Total, int(p.Ratio()*100)))

	barWidth := max(p.Width-lipgloss.Width(label)-lipgloss.Width(suffix), 4)
	filled := int(float64(barWidth) * p.Ratio())

	return label +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)) +
		suffix
}
