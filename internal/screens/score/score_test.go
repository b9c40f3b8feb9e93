package score

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lymphiz/internal/drainage"
	"github.com/abhisek/lymphiz/internal/quiz"
	"github.com/abhisek/lymphiz/internal/session"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func playedSession(t *testing.T, n int) *session.Session {
	t.Helper()
	ds, err := drainage.Default()
	require.NoError(t, err)
	sess := session.New(quiz.NewEngine(ds, quiz.DefaultConfig()), quiz.NewRand(9), nil, nil)
	for range n {
		q, err := sess.NewQuestion(quiz.ModeNextStep)
		require.NoError(t, err)
		_, err = sess.Answer(q.Answer)
		require.NoError(t, err)
	}
	return sess
}

func TestScore_ShowsTotalsAndAchievements(t *testing.T) {
	s := New(playedSession(t, 10))
	view := s.View(100, 40)
	assert.Contains(t, view, "10/10")
	assert.Contains(t, view, "Primeiros Passos")
	assert.Len(t, s.summary.Achievements, 4)
}

func TestScore_ResetNeedsConfirmation(t *testing.T) {
	sess := playedSession(t, 3)
	s := New(sess)

	s.Update(key('z'))
	assert.True(t, s.confirming)
	assert.True(t, s.CapturesEscape())

	s.Update(key('n'))
	assert.False(t, s.confirming)
	assert.Equal(t, 3, sess.State().TotalQuestions)

	s.Update(key('z'))
	s.Update(key('s'))
	assert.Zero(t, sess.State().TotalQuestions)
	assert.Zero(t, s.summary.TotalQuestions)
	assert.Empty(t, s.summary.Achievements)
}

func TestScore_RefreshReloads(t *testing.T) {
	sess := playedSession(t, 1)
	s := New(sess)
	assert.Equal(t, 1, s.summary.TotalQuestions)

	q, err := sess.NewQuestion(quiz.ModeNextStep)
	require.NoError(t, err)
	_, err = sess.Answer(q.Answer)
	require.NoError(t, err)

	s.Refresh()
	assert.Equal(t, 2, s.summary.TotalQuestions)
}
