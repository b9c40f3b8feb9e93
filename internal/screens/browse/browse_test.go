package browse

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lymphiz/internal/drainage"
	"github.com/abhisek/lymphiz/internal/router"
)

func TestOrganList_EnterPushesRoutes(t *testing.T) {
	ds, err := drainage.Default()
	require.NoError(t, err)

	s := New(ds)
	view := s.View(100, 40)
	assert.Contains(t, view, "Estômago")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Nil(t, cmd)
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)

	push, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	rs, ok := push.Screen.(*RouteScreen)
	require.True(t, ok)
	assert.Equal(t, ds.Organs()[1].Key, rs.organ.Key)
}

func TestRouteScreen_Navigation(t *testing.T) {
	ds, err := drainage.Default()
	require.NoError(t, err)
	organ, ok := ds.Organ("estomago")
	require.True(t, ok)

	rs := newRouteScreen(organ)
	rs.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, rs.selected)

	for range 20 {
		rs.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	assert.Equal(t, len(organ.Routes[1].Path)-1, rs.step)

	rs.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, rs.selected)
	assert.Equal(t, -1, rs.step, "changing route clears the step")

	view := rs.View(120, 60)
	assert.Contains(t, view, "1. "+organ.Routes[0].Path[0])
	assert.Contains(t, view, organ.Routes[0].Label)
	assert.Contains(t, view, "Drenagem para tronco intestinal.")
}

func TestRouteScreen_NarrowFallsBackToInline(t *testing.T) {
	ds, err := drainage.Default()
	require.NoError(t, err)
	organ, _ := ds.Organ("estomago")

	rs := newRouteScreen(organ)
	assert.NotContains(t, rs.View(120, 60), "→")

	view := rs.View(60, 60)
	assert.Contains(t, view, "→")
	assert.NotContains(t, view, "▼")
}

func TestRouteScreen_ToggleCaptions(t *testing.T) {
	ds, err := drainage.Default()
	require.NoError(t, err)
	organ, _ := ds.Organ("rins")

	rs := newRouteScreen(organ)
	assert.Contains(t, rs.View(120, 60), "Início da drenagem")

	rs.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	assert.False(t, rs.captions)
	assert.NotContains(t, rs.View(120, 60), "Início da drenagem")
}
