package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lymphiz/internal/ui/theme"
)

// ChoiceMsg is emitted once when the user commits to an option.
type ChoiceMsg struct {
	Index  int
	Option string
}

// MultiChoice is a lettered option selector. The correct option is only
// known after grading and is supplied through Reveal.
type MultiChoice struct {
	Options  []string
	Selected int
	Chosen   int
	Correct  int
}

// NewMultiChoice creates a selector over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{Options: options, Chosen: -1, Correct: -1}
}

// Committed reports whether an option has been chosen.
func (m MultiChoice) Committed() bool { return m.Chosen >= 0 }

// Revealed reports whether grading feedback is shown.
func (m MultiChoice) Revealed() bool { return m.Correct >= 0 }

// Reveal marks the correct option for feedback rendering.
func (m MultiChoice) Reveal(correct int) MultiChoice {
	m.Correct = correct
	return m
}

// Update handles navigation. Digits 1..n and letters a..d choose directly.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Committed() {
		return m, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, nil
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, nil
	case "enter":
		return m.choose(m.Selected)
	}

	if len(key) == 1 {
		switch c := key[0]; {
		case c >= '1' && c <= '9':
			return m.choose(int(c - '1'))
		case c >= 'a' && c <= 'd':
			return m.choose(int(c - 'a'))
		}
	}
	return m, nil
}

func (m MultiChoice) choose(i int) (MultiChoice, tea.Cmd) {
	if i < 0 || i >= len(m.Options) {
		return m, nil
	}
	m.Selected = i
	m.Chosen = i
	choice := ChoiceMsg{Index: i, Option: m.Options[i]}
	return m, func() tea.Msg { return choice }
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Committed() {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%c)  %s", prefix, 'A'+i, opt)

		style := theme.Unselected
		switch {
		case m.Revealed() && i == m.Correct:
			style = theme.Correct
			line += "  ✓"
		case m.Revealed() && i == m.Chosen:
			style = theme.Incorrect
			line += "  ✗"
		case m.Revealed() || m.Committed():
			style = theme.Dimmed
		case i == m.Selected:
			style = theme.Selected
		}
		b.WriteString(style.Render(line) + "\n")
	}
	return b.String()
}
