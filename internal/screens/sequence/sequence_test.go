package sequence

import (
	"slices"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lymphiz/internal/drainage"
	"github.com/abhisek/lymphiz/internal/quiz"
	"github.com/abhisek/lymphiz/internal/session"
)

func newScreen(t *testing.T) (*SequenceScreen, *session.Session) {
	t.Helper()
	ds, err := drainage.Default()
	require.NoError(t, err)
	sess := session.New(quiz.NewEngine(ds, quiz.DefaultConfig()), quiz.NewRand(3), nil, nil)
	s := New(sess)
	s.Update(s.generate()())
	require.NotNil(t, s.game)
	return s, sess
}

func typeText(s *SequenceScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

// correctPositions maps each shown structure to its place in the route.
func correctPositions(g *quiz.SequenceGame) []string {
	used := make([]bool, len(g.Correct))
	out := make([]string, len(g.Shuffled))
	for i, name := range g.Shuffled {
		for j, want := range g.Correct {
			if !used[j] && want == name {
				used[j] = true
				out[i] = string(rune('1' + j))
				break
			}
		}
	}
	return out
}

func TestSequence_CorrectOrder(t *testing.T) {
	s, sess := newScreen(t)

	typeText(s, strings.Join(correctPositions(s.game), " "))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	require.NotNil(t, s.result)
	assert.True(t, s.result.Correct)
	assert.Equal(t, 1, sess.State().Sequence.Score)
	assert.Contains(t, s.View(100, 40), "Sequência correta")
}

func TestSequence_IdentityOrderOnShuffledRoute(t *testing.T) {
	s, sess := newScreen(t)
	require.False(t, slices.Equal(s.game.Shuffled, s.game.Correct))

	pos := make([]string, s.game.Len())
	for i := range pos {
		pos[i] = string(rune('1' + i))
	}
	typeText(s, strings.Join(pos, ","))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	require.NotNil(t, s.result)
	assert.False(t, s.result.Correct)
	assert.Equal(t, 1, sess.State().Sequence.Total)
}

func TestSequence_InvalidPositionsKeepGameOpen(t *testing.T) {
	s, sess := newScreen(t)

	typeText(s, "1")
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	assert.Nil(t, s.result)
	assert.NotEmpty(t, s.hint)
	assert.Zero(t, sess.State().TotalQuestions)
}

func TestSequence_RejectsLetters(t *testing.T) {
	s, _ := newScreen(t)
	typeText(s, "1a2")
	assert.Equal(t, "12", s.input.Value())
}
