package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphiz/internal/quiz"
	"github.com/abhisek/lymphiz/internal/ui/components"
	"github.com/abhisek/lymphiz/internal/ui/layout"
	"github.com/abhisek/lymphiz/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	switch {
	case p.errMsg != "":
		return layout.Center(renderError(p.errMsg, cw), width, height)
	case p.question == nil:
		return layout.Center(theme.Hint.Render("Gerando pergunta..."), width, height)
	}

	sections := []string{
		p.renderInfoLine(cw),
		components.Card(p.renderPrompt(cw-6), cw),
		p.choice.View(),
	}
	if p.result != nil {
		sections = append(sections, p.renderFeedback(cw))
		if banner := components.UnlockBanner(p.result.Unlocked, cw); banner != "" {
			sections = append(sections, banner)
		}
	}
	return layout.Center(strings.Join(sections, "\n\n"), width, height)
}

func (p *PracticeScreen) renderInfoLine(cw int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(p.question.OrganName + " · " + p.question.RouteLabel)
	right := theme.Dimmed.Render(fmt.Sprintf("nesta rodada %d/%d", p.right, p.asked))
	gap := max(cw-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (p *PracticeScreen) renderPrompt(width int) string {
	q := p.question
	body := lipgloss.NewStyle().Width(width).Foreground(theme.Text).Bold(true)
	if q.Mode != quiz.ModeClinicalCase {
		// The next-step prompt carries its own organ line; show the question only.
		lines := strings.Split(q.Prompt, "\n")
		return body.Render(lines[len(lines)-1])
	}
	return body.Render(q.Prompt)
}

func (p *PracticeScreen) renderFeedback(cw int) string {
	if p.result.Correct {
		return theme.Correct.Width(cw).Align(lipgloss.Center).Render("✓ Correto!")
	}
	return theme.Incorrect.Width(cw).Align(lipgloss.Center).
		Render("✗ Incorreto. Resposta certa: " + p.result.Expected)
}

func renderError(msg string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("Não foi possível gerar uma pergunta.\n\n" + msg)
}
