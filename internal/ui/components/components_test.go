package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMenu_SkipsDisabledAndShortcuts(t *testing.T) {
	picked := ""
	action := func(name string) func() tea.Cmd {
		return func() tea.Cmd { picked = name; return nil }
	}
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b", Action: action("b")},
		{Label: "c", Disabled: true},
		{Label: "d", Action: action("d")},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(key('2'))
	assert.Equal(t, "b", picked)

	m, _ = m.Update(key('1'))
	assert.Equal(t, 1, m.Selected, "disabled shortcut is ignored")
}

func TestMultiChoice_ChooseOnceThenReveal(t *testing.T) {
	mc := NewMultiChoice([]string{"w", "x", "y", "z"})
	mc, cmd := mc.Update(key('c'))
	require.NotNil(t, cmd)
	choice, ok := cmd().(ChoiceMsg)
	require.True(t, ok)
	assert.Equal(t, ChoiceMsg{Index: 2, Option: "y"}, choice)

	_, cmd = mc.Update(key('1'))
	assert.Nil(t, cmd, "second choice is ignored")

	mc = mc.Reveal(0)
	view := mc.View()
	assert.Contains(t, view, "✓")
	assert.Contains(t, view, "✗")
}

func TestParsePositions(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"3 1 2", []int{3, 1, 2}, false},
		{"3,1,2", []int{3, 1, 2}, false},
		{" 2 , 1 ", []int{2, 1}, false},
		{"", nil, true},
		{"1 x", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePositions(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProgressBar_Ratio(t *testing.T) {
	assert.Zero(t, ProgressBar{Done: 3}.Ratio())
	assert.InDelta(t, 0.8, ProgressBar{Done: 8, Total: 10}.Ratio(), 1e-9)
	assert.Equal(t, 1.0, ProgressBar{Done: 12, Total: 10}.Ratio())
	assert.True(t, strings.Contains(ProgressBar{Label: "Quiz", Done: 8, Total: 10, Width: 50}.View(), "8/10"))
}
