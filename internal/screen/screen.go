package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lymphiz/internal/ui/layout"
)

// Screen is one page of the terminal UI.
type Screen interface {
	Init() tea.Cmd

	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body between header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Refresher is implemented by screens that show state another screen may
// have changed. Refresh runs when the screen becomes active again.
type Refresher interface {
	Refresh() tea.Cmd
}

// EscapeCapturer is implemented by screens that consume Esc themselves,
// for example to close an inner panel before leaving.
type EscapeCapturer interface {
	CapturesEscape() bool
}
