package browse

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphiz/internal/diagram"
	"github.com/abhisek/lymphiz/internal/drainage"
	"github.com/abhisek/lymphiz/internal/screen"
	"github.com/abhisek/lymphiz/internal/ui/layout"
	"github.com/abhisek/lymphiz/internal/ui/theme"
)

// RouteScreen shows the routes of one organ next to the diagram of the
// selected route.
type RouteScreen struct {
	organ    drainage.Organ
	selected int
	step     int
	captions bool
}

var _ screen.Screen = (*RouteScreen)(nil)
var _ screen.KeyHintProvider = (*RouteScreen)(nil)

func newRouteScreen(organ drainage.Organ) *RouteScreen {
	return &RouteScreen{organ: organ, step: -1, captions: true}
}

func (r *RouteScreen) Init() tea.Cmd { return nil }
func (r *RouteScreen) Title() string { return r.organ.Name }

func (r *RouteScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Rota"},
		{Key: "←→", Description: "Etapa"},
		{Key: "C", Description: "Legendas"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (r *RouteScreen) route() drainage.Route {
	return r.organ.Routes[r.selected]
}

func (r *RouteScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if r.selected > 0 {
			r.selected--
			r.step = -1
		}
	case "down", "j":
		if r.selected < len(r.organ.Routes)-1 {
			r.selected++
			r.step = -1
		}
	case "right", "l":
		r.step = min(r.step+1, len(r.route().Path)-1)
	case "left", "h":
		r.step = max(r.step-1, -1)
	case "c":
		r.captions = !r.captions
	}
	return r, nil
}

func (r *RouteScreen) View(width, height int) string {
	listFrame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	listWidth := 20
	for _, rt := range r.organ.Routes {
		listWidth = max(listWidth, lipgloss.Width("▸ "+rt.Label)+listFrame.GetHorizontalFrameSize())
	}
	listWidth = min(listWidth, max(width/2, 20))

	var list strings.Builder
	for i, rt := range r.organ.Routes {
		if i == r.selected {
			list.WriteString(theme.Selected.Render("▸ " + rt.Label))
		} else {
			list.WriteString(theme.Unselected.Render("  " + rt.Label))
		}
		list.WriteString("\n")
	}
	left := listFrame.Width(listWidth).Render(list.String())

	room := width - listWidth - 2
	nodeWidth := min(max(room-12, 20), 48)
	path := r.route().Path
	body := diagram.Render(path, diagram.Options{
		Width:     nodeWidth,
		Captions:  r.captions,
		Highlight: r.step,
	})
	// Long routes do not fit in small terminals.
	if lipgloss.Height(body) > height-2 || lipgloss.Width(body) > room {
		body = diagram.Inline(path)
		if r.step >= 0 {
			body += "\n\n" + theme.Hint.Render(diagram.Caption(path, r.step))
		}
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", body)
	return layout.Center(content, width, height)
}
