// Package sequence is the screen where the player restores the order of a
// shuffled drainage route.
package sequence

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphiz/internal/diagram"
	"github.com/abhisek/lymphiz/internal/quiz"
	"github.com/abhisek/lymphiz/internal/screen"
	"github.com/abhisek/lymphiz/internal/session"
	"github.com/abhisek/lymphiz/internal/ui/components"
	"github.com/abhisek/lymphiz/internal/ui/layout"
	"github.com/abhisek/lymphiz/internal/ui/theme"
)

type gameReadyMsg struct {
	Game *quiz.SequenceGame
	Err  error
}

// SequenceScreen shows one shuffled route and reads the player's positions.
type SequenceScreen struct {
	sess   *session.Session
	game   *quiz.SequenceGame
	input  components.PositionsInput
	result *session.Result
	hint   string
	errMsg string
}

var _ screen.Screen = (*SequenceScreen)(nil)
var _ screen.KeyHintProvider = (*SequenceScreen)(nil)

// New creates a sequence screen over sess.
func New(sess *session.Session) *SequenceScreen {
	return &SequenceScreen{
		sess:  sess,
		input: components.NewPositionsInput("ex.: 3 1 2", 64),
	}
}

func (s *SequenceScreen) Init() tea.Cmd {
	return tea.Batch(s.generate(), s.input.Init())
}

func (s *SequenceScreen) Title() string {
	return quiz.ModeSequence.DisplayName()
}

func (s *SequenceScreen) KeyHints() []layout.KeyHint {
	if s.result != nil || s.errMsg != "" {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Nova sequência"},
			{Key: "Esc", Description: "Voltar"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-9", Description: "Posições"},
		{Key: "Enter", Description: "Enviar"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (s *SequenceScreen) generate() tea.Cmd {
	sess := s.sess
	return func() tea.Msg {
		sess.Lock()
		defer sess.Unlock()
		g, err := sess.NewSequence()
		return gameReadyMsg{Game: g, Err: err}
	}
}

func (s *SequenceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gameReadyMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.game = msg.Game
		s.result = nil
		s.hint = ""
		s.errMsg = ""
		s.input.Reset()
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			if s.result != nil || s.errMsg != "" {
				return s, s.generate()
			}
			return s, s.submit()
		}
		if s.result != nil || s.game == nil {
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SequenceScreen) submit() tea.Cmd {
	if s.game == nil {
		return nil
	}
	positions, err := s.input.Positions()
	if err != nil {
		s.hint = fmt.Sprintf("Digite %d posições separadas por espaço.", s.game.Len())
		return nil
	}

	s.sess.Lock()
	res, err := s.sess.AnswerSequence(positions)
	s.sess.Unlock()
	if err != nil {
		if errors.Is(err, quiz.ErrInvalidPositions) {
			s.hint = fmt.Sprintf("Use cada posição de 1 a %d, uma por estrutura.", s.game.Len())
			return nil
		}
		s.errMsg = err.Error()
		return nil
	}
	s.result = &res
	s.hint = ""
	return nil
}

func (s *SequenceScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if s.errMsg != "" {
		return layout.Center(theme.Incorrect.Render(s.errMsg), width, height)
	}
	if s.game == nil {
		return layout.Center(theme.Hint.Render("Gerando sequência..."), width, height)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(s.game.OrganName + " · " + s.game.RouteLabel))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("Coloque as estruturas na ordem da drenagem:"))
	b.WriteString("\n\n")
	for i, name := range s.game.Shuffled {
		b.WriteString(theme.Body.Render(fmt.Sprintf("  %d) %s", i+1, name)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.result == nil {
		b.WriteString(s.input.View())
		if s.hint != "" {
			b.WriteString("\n" + theme.Hint.Render(s.hint))
		}
		return layout.Center(components.Card(b.String(), cw), width, height)
	}

	if s.result.Correct {
		b.WriteString(theme.Correct.Render("✓ Sequência correta!"))
	} else {
		b.WriteString(theme.Incorrect.Render("✗ Sua ordem: "))
		b.WriteString(theme.Dimmed.Render(strings.Join(s.result.User, " → ")))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render("Ordem correta: "))
		b.WriteString(diagram.Inline(s.result.Sequence))
	}
	out := components.Card(b.String(), cw)
	if banner := components.UnlockBanner(s.result.Unlocked, cw); banner != "" {
		out += "\n\n" + banner
	}
	return layout.Center(out, width, height)
}
