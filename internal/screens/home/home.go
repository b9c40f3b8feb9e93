package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphiz/internal/quiz"
	"github.com/abhisek/lymphiz/internal/router"
	"github.com/abhisek/lymphiz/internal/screen"
	"github.com/abhisek/lymphiz/internal/screens/browse"
	"github.com/abhisek/lymphiz/internal/screens/practice"
	"github.com/abhisek/lymphiz/internal/screens/score"
	"github.com/abhisek/lymphiz/internal/screens/sequence"
	"github.com/abhisek/lymphiz/internal/session"
	"github.com/abhisek/lymphiz/internal/ui/components"
	"github.com/abhisek/lymphiz/internal/ui/layout"
)

// pillWidth is the fixed width of the menu pills.
const pillWidth = 26

// HomeScreen is the main menu.
type HomeScreen struct {
	sess  *session.Session
	menu  components.Menu
	stats stats
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Refresher = (*HomeScreen)(nil)

// New creates the home menu for sess.
func New(sess *session.Session) *HomeScreen {
	ds := sess.Dataset()
	noCases := len(ds.CaseOrgans()) == 0

	items := []components.MenuItem{
		{Label: quiz.ModeNextStep.DisplayName(), Hint: "Para onde segue a linfa?", Action: func() tea.Cmd {
			return router.Push(practice.New(sess, quiz.ModeNextStep))
		}},
		{Label: quiz.ModeClinicalCase.DisplayName(), Hint: "Primeira estação acometida", Disabled: noCases, Action: func() tea.Cmd {
			return router.Push(practice.New(sess, quiz.ModeClinicalCase))
		}},
		{Label: quiz.ModeSequence.DisplayName(), Hint: "Ordene a rota", Action: func() tea.Cmd {
			return router.Push(sequence.New(sess))
		}},
		{Label: "Explorar drenagem", Hint: "Diagramas das rotas", Action: func() tea.Cmd {
			return router.Push(browse.New(ds))
		}},
		{Label: "Pontuação", Hint: "Acertos e conquistas", Action: func() tea.Cmd {
			return router.Push(score.New(sess))
		}},
		{Label: "Sair", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h := &HomeScreen{sess: sess, menu: components.NewMenu(items)}
	h.load()
	return h
}

func (h *HomeScreen) load() {
	h.sess.Lock()
	defer h.sess.Unlock()
	st := h.sess.State()
	h.stats = stats{
		correct:      st.TotalScore,
		answered:     st.TotalQuestions,
		achievements: len(st.Achievements),
		organs:       len(h.sess.Dataset().Organs()),
	}
}

func (h *HomeScreen) Init() tea.Cmd { return nil }
func (h *HomeScreen) Title() string { return "Início" }

func (h *HomeScreen) Refresh() tea.Cmd {
	h.load()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height+8) || width < 100
	cw := components.ContentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStats(h.stats, cw),
		h.renderMenu(cw, compact),
	}
	return components.Panel(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) renderMenu(cw int, compact bool) string {
	if compact {
		return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(h.menu.View())
	}
	pills := make([]string, 0, len(h.menu.Items))
	for i, item := range h.menu.Items {
		if item.Disabled {
			continue
		}
		pills = append(pills, components.Pill(item.Label, i == h.menu.Selected, pillWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(pills, "\n"))
}
