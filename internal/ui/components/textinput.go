package components

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lymphiz/internal/ui/theme"
)

// PositionsInput collects a list of 1-based positions such as "3 1 2".
// Only digits and separators are accepted.
type PositionsInput struct {
	Model textinput.Model
}

// NewPositionsInput creates a focused positions input.
func NewPositionsInput(placeholder string, charLimit int) PositionsInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.Focus()
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return PositionsInput{Model: ti}
}

// Init starts the cursor blink.
func (p PositionsInput) Init() tea.Cmd {
	return p.Model.Focus()
}

// Update filters keystrokes and forwards the rest to the text model.
func (p PositionsInput) Update(msg tea.Msg) (PositionsInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && !acceptsPositionRune(key[0]) {
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.Model, cmd = p.Model.Update(msg)
	return p, cmd
}

func acceptsPositionRune(c byte) bool {
	return (c >= '0' && c <= '9') || c == ' ' || c == ','
}

// View renders the input.
func (p PositionsInput) View() string {
	return theme.Body.Render(p.Model.View())
}

// Value returns the raw text.
func (p PositionsInput) Value() string {
	return p.Model.Value()
}

// Reset clears the text.
func (p *PositionsInput) Reset() {
	p.Model.Reset()
}

// Positions parses the text into integers. Range checks are left to the
// caller.
func (p PositionsInput) Positions() ([]int, error) {
	return ParsePositions(p.Model.Value())
}

// ParsePositions splits s on spaces and commas and parses each field.
func ParsePositions(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' })
	if len(fields) == 0 {
		return nil, fmt.Errorf("no positions entered")
	}
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid position %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}
