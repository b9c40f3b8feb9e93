// Package score shows per-mode results and achievements, and resets them.
package score

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphiz/internal/achievements"
	"github.com/abhisek/lymphiz/internal/screen"
	"github.com/abhisek/lymphiz/internal/session"
	"github.com/abhisek/lymphiz/internal/ui/components"
	"github.com/abhisek/lymphiz/internal/ui/layout"
	"github.com/abhisek/lymphiz/internal/ui/theme"
)

// ScoreScreen renders a session Summary.
type ScoreScreen struct {
	sess       *session.Session
	summary    *session.Summary
	confirming bool
}

var _ screen.Screen = (*ScoreScreen)(nil)
var _ screen.KeyHintProvider = (*ScoreScreen)(nil)
var _ screen.Refresher = (*ScoreScreen)(nil)
var _ screen.EscapeCapturer = (*ScoreScreen)(nil)

// New creates a score screen for sess.
func New(sess *session.Session) *ScoreScreen {
	s := &ScoreScreen{sess: sess}
	s.load()
	return s
}

func (s *ScoreScreen) load() {
	s.sess.Lock()
	defer s.sess.Unlock()
	s.summary = s.sess.Summary()
}

func (s *ScoreScreen) Init() tea.Cmd { return nil }
func (s *ScoreScreen) Title() string { return "Pontuação" }

func (s *ScoreScreen) Refresh() tea.Cmd {
	s.load()
	return nil
}

func (s *ScoreScreen) CapturesEscape() bool { return s.confirming }

func (s *ScoreScreen) KeyHints() []layout.KeyHint {
	if s.confirming {
		return []layout.KeyHint{
			{Key: "S", Description: "Zerar"},
			{Key: "N", Description: "Cancelar"},
		}
	}
	return []layout.KeyHint{
		{Key: "Z", Description: "Zerar pontuação"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *ScoreScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()
	if s.confirming {
		switch key {
		case "s", "y", "enter":
			s.sess.Lock()
			s.sess.Reset()
			s.sess.Unlock()
			s.confirming = false
			s.load()
		case "n", "esc":
			s.confirming = false
		}
		return s, nil
	}
	if key == "z" || key == "r" {
		s.confirming = true
	}
	return s, nil
}

func (s *ScoreScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	sum := s.summary

	var b strings.Builder
	for _, m := range sum.Modes {
		bar := components.ProgressBar{Label: m.Label, Done: m.Score, Total: m.Total, Width: cw - 6}
		b.WriteString(bar.View() + "\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Body.Bold(true).Render(fmt.Sprintf(
		"Total: %d/%d  (%.0f%%)", sum.TotalScore, sum.TotalQuestions, sum.Accuracy*100)))

	sections := []string{
		components.Card(b.String(), cw),
		components.Card(renderAchievements(sum.Achievements), cw),
	}
	if s.confirming {
		sections = append(sections, components.Banner("Zerar pontuação e conquistas? (s/n)", cw))
	}
	return layout.Center(strings.Join(sections, "\n"), width, height)
}

func renderAchievements(unlocked []achievements.ID) string {
	have := make(achievements.Set, len(unlocked))
	have.Add(unlocked...)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Conquistas") + "\n\n")
	for _, id := range achievements.All() {
		if have.Has(id) {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).
				Render(id.Icon() + "  " + id.DisplayName()))
		} else {
			b.WriteString(theme.Dimmed.Render("·   " + id.DisplayName()))
		}
		b.WriteString("  " + theme.Hint.Render(id.Description()) + "\n")
	}
	return b.String()
}
