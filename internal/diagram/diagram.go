package diagram

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lymphiz/internal/ui/theme"
)

// Role is a node's place in a drainage path.
type Role int

const (
	RoleOrigin Role = iota
	RoleIntermediate
	RoleTerminal
)

// RoleAt returns the role of position i in a path of length n. A single
// node path is its own origin.
func RoleAt(i, n int) Role {
	switch {
	case i == 0:
		return RoleOrigin
	case i == n-1:
		return RoleTerminal
	default:
		return RoleIntermediate
	}
}

// Caption describes the step at position i of path. Intermediate steps name
// the structure they drain into.
func Caption(path []string, i int) string {
	switch RoleAt(i, len(path)) {
	case RoleOrigin:
		return "Início da drenagem linfática."
	case RoleTerminal:
		return "Etapa final: Chegada à circulação venosa."
	default:
		return fmt.Sprintf("Drenagem para %s.", strings.ToLower(path[i+1]))
	}
}

func nodeStyle(role Role, width int) lipgloss.Style {
	base := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width).
		Align(lipgloss.Center)

	switch role {
	case RoleOrigin:
		return base.
			BorderForeground(theme.Secondary).
			Foreground(theme.Secondary).
			Bold(true)
	case RoleTerminal:
		return base.
			Border(lipgloss.DoubleBorder()).
			BorderForeground(theme.Accent).
			Foreground(theme.Accent).
			Bold(true)
	default:
		return base.
			BorderForeground(theme.Border).
			Foreground(theme.Text)
	}
}

const minNodeWidth = 12

var (
	arrowStyle   = lipgloss.NewStyle().Foreground(theme.Primary)
	captionStyle = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
)

// Options tune Render.
type Options struct {
	// Width is the minimum box width, borders included. Boxes grow to fit
	// the longest label.
	Width int

	// Captions adds the step caption under each node.
	Captions bool

	// Highlight marks one position with the selection colour; -1 for none.
	Highlight int
}

// Render draws path top to bottom as a linear directed diagram. Labels and
// captions are never wrapped.
func Render(path []string, opts Options) string {
	if len(path) == 0 {
		return ""
	}

	labels := make([]string, len(path))
	width := max(opts.Width, minNodeWidth)
	frame := nodeStyle(RoleOrigin, 0).GetHorizontalFrameSize()
	for i, step := range path {
		labels[i] = fmt.Sprintf("%d. %s", i+1, step)
		width = max(width, lipgloss.Width(labels[i])+frame)
	}

	block := width
	var captions []string
	if opts.Captions {
		captions = make([]string, len(path))
		for i := range path {
			captions[i] = captionStyle.Render(Caption(path, i))
			block = max(block, lipgloss.Width(captions[i]))
		}
	}

	arrow := lipgloss.PlaceHorizontal(block, lipgloss.Center, arrowStyle.Render("▼"))

	var b strings.Builder
	for i := range path {
		style := nodeStyle(RoleAt(i, len(path)), width)
		if i == opts.Highlight {
			style = style.BorderForeground(theme.Primary)
		}
		b.WriteString(lipgloss.PlaceHorizontal(block, lipgloss.Center, style.Render(labels[i])))
		if captions != nil {
			b.WriteString("\n")
			b.WriteString(lipgloss.PlaceHorizontal(block, lipgloss.Center, captions[i]))
		}
		if i < len(path)-1 {
			b.WriteString("\n")
			b.WriteString(arrow)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Inline renders path on one line joined by arrows, for narrow spaces.
func Inline(path []string) string {
	parts := make([]string, len(path))
	for i, step := range path {
		switch RoleAt(i, len(path)) {
		case RoleOrigin:
			parts[i] = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(step)
		case RoleTerminal:
			parts[i] = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(step)
		default:
			parts[i] = lipgloss.NewStyle().Foreground(theme.Text).Render(step)
		}
	}
	return strings.Join(parts, arrowStyle.Render(" → "))
}
