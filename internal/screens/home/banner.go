package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphiz/internal/ui/theme"
)

const titleFull = ` ██╗  ██╗   ██╗███╗   ███╗██████╗ ██╗  ██╗██╗███████╗
 ██║  ╚██╗ ██╔╝████╗ ████║██╔══██╗██║  ██║██║╚══███╔╝
 ██║   ╚████╔╝ ██╔████╔██║██████╔╝███████║██║  ███╔╝
 ██║    ╚██╔╝  ██║╚██╔╝██║██╔═══╝ ██╔══██║██║ ███╔╝
 ███████╗██║   ██║ ╚═╝ ██║██║     ██║  ██║██║███████╗
 ╚══════╝╚═╝   ╚═╝     ╚═╝╚═╝     ╚═╝  ╚═╝╚═╝╚══════╝`

const titleCompact = "L · Y · M · P · H · I · Z"

const tagline = "Drenagem linfática dos órgãos abdominais"

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	art := titleFull
	if compact || lipgloss.Width(titleFull) > cw {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art) + "\n" + theme.Subtitle.Render(tagline))
}

type stats struct {
	correct      int
	answered     int
	achievements int
	organs       int
}

func renderStats(st stats, cw int) string {
	accuracy := 0
	if st.answered > 0 {
		accuracy = st.correct * 100 / st.answered
	}
	line := fmt.Sprintf("%s   %s   %s",
		lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render(fmt.Sprintf("✓ %d/%d (%d%%)", st.correct, st.answered, accuracy)),
		lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).
			Render(fmt.Sprintf("★ %d conquistas", st.achievements)),
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(fmt.Sprintf("◆ %d órgãos", st.organs)),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(max(cw-2, 0)).
		Align(lipgloss.Center).
		Render(line)
}
