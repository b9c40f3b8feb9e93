// Package browse lets the player explore the drainage routes of each organ.
package browse

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lymphiz/internal/drainage"
	"github.com/abhisek/lymphiz/internal/router"
	"github.com/abhisek/lymphiz/internal/screen"
	"github.com/abhisek/lymphiz/internal/ui/components"
	"github.com/abhisek/lymphiz/internal/ui/layout"
	"github.com/abhisek/lymphiz/internal/ui/theme"
)

// OrganListScreen lists every organ of the dataset.
type OrganListScreen struct {
	organs []drainage.Organ
	menu   components.Menu
}

var _ screen.Screen = (*OrganListScreen)(nil)
var _ screen.KeyHintProvider = (*OrganListScreen)(nil)

// New creates the organ list for ds.
func New(ds *drainage.Dataset) *OrganListScreen {
	organs := ds.Organs()
	items := make([]components.MenuItem, len(organs))
	for i, o := range organs {
		items[i] = components.MenuItem{
			Label:  o.Name,
			Hint:   routeCount(len(o.Routes)),
			Action: func() tea.Cmd { return router.Push(newRouteScreen(o)) },
		}
	}
	return &OrganListScreen{organs: organs, menu: components.NewMenu(items)}
}

func routeCount(n int) string {
	if n == 1 {
		return "1 rota"
	}
	return fmt.Sprintf("%d rotas", n)
}

func (o *OrganListScreen) Init() tea.Cmd { return nil }
func (o *OrganListScreen) Title() string { return "Explorar drenagem" }

func (o *OrganListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Abrir órgão"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (o *OrganListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	o.menu, cmd = o.menu.Update(msg)
	return o, cmd
}

func (o *OrganListScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	var b strings.Builder
	b.WriteString(theme.Title.Width(cw - 6).Render("Órgãos"))
	b.WriteString("\n\n")
	b.WriteString(o.menu.View())
	if o.menu.Selected < len(o.organs) {
		org := o.organs[o.menu.Selected]
		if org.HasCase() {
			b.WriteString("\n" + theme.Hint.Render("Este órgão aparece nos casos clínicos."))
		}
	}
	return layout.Center(components.Card(b.String(), cw), width, height)
}
