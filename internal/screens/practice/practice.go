// Package practice is the multiple-choice screen shared by the next-step and
// clinical-case modes.
package practice

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lymphiz/internal/quiz"
	"github.com/abhisek/lymphiz/internal/screen"
	"github.com/abhisek/lymphiz/internal/session"
	"github.com/abhisek/lymphiz/internal/ui/components"
	"github.com/abhisek/lymphiz/internal/ui/layout"
)

// PracticeScreen asks one question at a time until the player leaves.
type PracticeScreen struct {
	sess     *session.Session
	mode     quiz.Mode
	question *quiz.Question
	choice   components.MultiChoice
	result   *session.Result
	errMsg   string

	// asked and right count this visit only; the session keeps the totals.
	asked int
	right int
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen for mode.
func New(sess *session.Session, mode quiz.Mode) *PracticeScreen {
	return &PracticeScreen{sess: sess, mode: mode}
}

func (p *PracticeScreen) Init() tea.Cmd {
	return p.generate()
}

func (p *PracticeScreen) Title() string {
	return p.mode.DisplayName()
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case p.errMsg != "":
		return []layout.KeyHint{
			{Key: "R", Description: "Tentar de novo"},
			{Key: "Esc", Description: "Voltar"},
		}
	case p.result != nil:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Próxima"},
			{Key: "Esc", Description: "Voltar"},
		}
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navegar"},
			{Key: "1-4", Description: "Responder"},
			{Key: "Enter", Description: "Confirmar"},
			{Key: "Esc", Description: "Voltar"},
		}
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return p.handleQuestionReady(msg)

	case components.ChoiceMsg:
		return p.handleChoice(msg)

	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PracticeScreen) generate() tea.Cmd {
	sess, mode := p.sess, p.mode
	return func() tea.Msg {
		sess.Lock()
		defer sess.Unlock()
		q, err := sess.NewQuestion(mode)
		return questionReadyMsg{Question: q, Err: err}
	}
}

func (p *PracticeScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		p.errMsg = msg.Err.Error()
		return p, nil
	}
	p.errMsg = ""
	p.question = msg.Question
	p.choice = components.NewMultiChoice(msg.Question.Options)
	p.result = nil
	return p, nil
}

func (p *PracticeScreen) handleChoice(msg components.ChoiceMsg) (screen.Screen, tea.Cmd) {
	if p.question == nil || p.result != nil {
		return p, nil
	}
	p.sess.Lock()
	res, err := p.sess.Answer(msg.Option)
	p.sess.Unlock()
	if err != nil {
		p.errMsg = err.Error()
		return p, nil
	}
	p.result = &res
	p.asked++
	if res.Correct {
		p.right++
	}
	p.choice = p.choice.Reveal(p.question.AnswerIndex())
	return p, nil
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	if p.errMsg != "" {
		if key == "r" {
			return p, p.generate()
		}
		return p, nil
	}
	if p.result != nil {
		switch key {
		case "enter", "space", "n":
			return p, p.generate()
		}
		return p, nil
	}
	var cmd tea.Cmd
	p.choice, cmd = p.choice.Update(msg)
	return p, cmd
}
