package practice

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/lymphiz/internal/drainage"
	"github.com/abhisek/lymphiz/internal/quiz"
	"github.com/abhisek/lymphiz/internal/session"
	"github.com/abhisek/lymphiz/internal/ui/components"
)

func newSession(t *testing.T, ds *drainage.Dataset) *session.Session {
	t.Helper()
	if ds == nil {
		var err error
		ds, err = drainage.Default()
		require.NoError(t, err)
	}
	return session.New(quiz.NewEngine(ds, quiz.DefaultConfig()), quiz.NewRand(11), nil, nil)
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// run executes cmd and feeds its message back into the screen.
func run(t *testing.T, p *PracticeScreen, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	_, next := p.Update(cmd())
	return next
}

func TestPractice_AnswerCorrectly(t *testing.T) {
	sess := newSession(t, nil)
	p := New(sess, quiz.ModeNextStep)

	run(t, p, p.Init())
	require.NotNil(t, p.question)
	assert.Len(t, p.choice.Options, quiz.OptionCount)

	idx := p.question.AnswerIndex()
	require.GreaterOrEqual(t, idx, 0)

	_, cmd := p.Update(key(rune('1' + idx)))
	run(t, p, cmd)

	require.NotNil(t, p.result)
	assert.True(t, p.result.Correct)
	assert.Equal(t, 1, sess.State().Quiz.Score)
	assert.Equal(t, 1, sess.State().TotalQuestions)
	assert.Contains(t, p.View(100, 30), "Correto")
}

func TestPractice_WrongAnswerShowsExpected(t *testing.T) {
	sess := newSession(t, nil)
	p := New(sess, quiz.ModeClinicalCase)
	run(t, p, p.Init())
	require.NotNil(t, p.question)
	assert.NotNil(t, p.question.Patient)

	wrong := (p.question.AnswerIndex() + 1) % quiz.OptionCount
	_, cmd := p.Update(key(rune('1' + wrong)))
	run(t, p, cmd)

	require.NotNil(t, p.result)
	assert.False(t, p.result.Correct)
	assert.Equal(t, p.question.Answer, p.result.Expected)
	assert.Equal(t, 1, sess.State().ClinicalCase.Total)
	assert.Zero(t, sess.State().ClinicalCase.Score)
}

func TestPractice_EnterAfterFeedbackLoadsNext(t *testing.T) {
	sess := newSession(t, nil)
	p := New(sess, quiz.ModeNextStep)
	run(t, p, p.Init())
	first := p.question

	_, cmd := p.Update(key('a'))
	run(t, p, cmd)
	require.NotNil(t, p.result)

	_, cmd = p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	run(t, p, cmd)

	assert.Nil(t, p.result)
	assert.NotSame(t, first, p.question)
	assert.Equal(t, 1, p.asked)
}

func TestPractice_DuplicateChoiceIgnored(t *testing.T) {
	sess := newSession(t, nil)
	p := New(sess, quiz.ModeNextStep)
	run(t, p, p.Init())

	_, cmd := p.Update(key('1'))
	msg := cmd()
	p.Update(msg)
	p.Update(components.ChoiceMsg{Index: 1, Option: p.question.Options[1]})

	assert.Equal(t, 1, sess.State().TotalQuestions)
}

func TestPractice_GenerationFailureShowsError(t *testing.T) {
	ds, err := drainage.New("test", []drainage.Organ{
		{Key: "x", Name: "X", Routes: []drainage.Route{{Label: "r", Path: []string{"A"}}}},
	})
	require.NoError(t, err)

	p := New(newSession(t, ds), quiz.ModeClinicalCase)
	run(t, p, p.Init())

	assert.NotEmpty(t, p.errMsg)
	assert.Contains(t, p.View(100, 30), "Não foi possível")
	assert.Equal(t, "R", p.KeyHints()[0].Key)
}
