package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/lymphiz/internal/achievements"
	"github.com/abhisek/lymphiz/internal/drainage"
	"github.com/abhisek/lymphiz/internal/quiz"
)

// Recorder observes session events. Implementations must be safe for
// concurrent use across sessions.
type Recorder interface {
	QuestionGenerated(mode quiz.Mode)
	GenerationFailed(mode quiz.Mode)
	AnswerGraded(mode quiz.Mode, correct bool)
	AchievementUnlocked(id achievements.ID)
}

// Result is the outcome of grading one submission.
type Result struct {
	Mode     quiz.Mode         `json:"mode"`
	Correct  bool              `json:"correct"`
	Expected string            `json:"expected,omitempty"`
	Sequence []string          `json:"sequence,omitempty"`
	User     []string          `json:"user,omitempty"`
	Unlocked []achievements.ID `json:"unlocked,omitempty"`
}

// Session owns one player's state and the instance they are answering.
// Callers serialize access with Lock/Unlock when a session is reachable
// from more than one goroutine.
type Session struct {
	sync.Mutex

	ID        string
	CreatedAt time.Time
	LastSeen  time.Time

	state    *State
	engine   *quiz.Engine
	rnd      quiz.Rand
	question *quiz.Question
	sequence *quiz.SequenceGame
	log      *zap.Logger
	rec      Recorder
}

// New creates a session with fresh state. log and rec may be nil.
func New(engine *quiz.Engine, rnd quiz.Rand, log *zap.Logger, rec Recorder) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	now := time.Now()
	id := uuid.New().String()
	return &Session{
		ID:        id,
		CreatedAt: now,
		LastSeen:  now,
		state:     NewState(),
		engine:    engine,
		rnd:       rnd,
		log:       log.With(zap.String("session", id)),
		rec:       rec,
	}
}

// State returns a snapshot of the session state. Changes to it do not
// reach the session.
func (s *Session) State() *State {
	return s.state.Clone()
}

// Question returns the current multiple-choice instance, or nil.
func (s *Session) Question() *quiz.Question {
	return s.question
}

// Sequence returns the current sequence game, or nil.
func (s *Session) Sequence() *quiz.SequenceGame {
	return s.sequence
}

// Dataset returns the drainage data the session draws from.
func (s *Session) Dataset() *drainage.Dataset {
	return s.engine.Dataset()
}

// NewQuestion replaces the current question with a fresh one for mode.
// On failure the previous question is kept.
func (s *Session) NewQuestion(mode quiz.Mode) (*quiz.Question, error) {
	if mode == quiz.ModeSequence {
		return nil, fmt.Errorf("new question: %s is played with NewSequence", mode)
	}
	q, err := s.engine.Question(s.rnd, mode)
	if err != nil {
		s.generationFailed(mode, err)
		return nil, err
	}
	s.question = q
	if s.rec != nil {
		s.rec.QuestionGenerated(mode)
	}
	s.log.Debug("question generated",
		zap.String("mode", string(mode)),
		zap.String("organ", q.OrganKey),
		zap.String("route", q.RouteLabel))
	return q, nil
}

// Answer grades answer against the current question.
func (s *Session) Answer(answer string) (Result, error) {
	if s.question == nil {
		return Result{}, &InvalidStateError{Op: "grade answer", Reason: "no question has been generated"}
	}
	q := s.question
	correct, err := q.Submit(answer)
	if err != nil {
		return Result{}, err
	}
	unlocked, err := s.record(q.Mode, correct)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Mode:     q.Mode,
		Correct:  correct,
		Expected: q.Answer,
		Unlocked: unlocked,
	}, nil
}

// NewSequence replaces the current sequence game with a fresh one.
func (s *Session) NewSequence() (*quiz.SequenceGame, error) {
	g, err := s.engine.Sequence(s.rnd)
	if err != nil {
		s.generationFailed(quiz.ModeSequence, err)
		return nil, err
	}
	s.sequence = g
	if s.rec != nil {
		s.rec.QuestionGenerated(quiz.ModeSequence)
	}
	s.log.Debug("sequence generated",
		zap.String("organ", g.OrganKey),
		zap.String("route", g.RouteLabel),
		zap.Int("length", g.Len()))
	return g, nil
}

// AnswerSequence grades a position assignment for the current sequence game.
func (s *Session) AnswerSequence(positions []int) (Result, error) {
	if s.sequence == nil {
		return Result{}, &InvalidStateError{Op: "grade sequence", Reason: "no sequence has been generated"}
	}
	g := s.sequence
	correct, err := g.SubmitPositions(positions)
	if err != nil {
		return Result{}, err
	}
	unlocked, err := s.record(quiz.ModeSequence, correct)
	if err != nil {
		return Result{}, err
	}
	user, _ := g.User()
	return Result{
		Mode:     quiz.ModeSequence,
		Correct:  correct,
		Sequence: g.Correct,
		User:     user,
		Unlocked: unlocked,
	}, nil
}

// Reset zeroes the score state. Pending instances are left in place.
func (s *Session) Reset() {
	s.state.Reset()
	s.log.Info("session reset")
}

// Summary builds the score summary of the session.
func (s *Session) Summary() *Summary {
	return BuildSummary(s.state)
}

func (s *Session) record(mode quiz.Mode, correct bool) ([]achievements.ID, error) {
	unlocked, err := s.state.Record(mode, correct)
	if err != nil {
		return nil, err
	}
	if s.rec != nil {
		s.rec.AnswerGraded(mode, correct)
		for _, id := range unlocked {
			s.rec.AchievementUnlocked(id)
		}
	}
	for _, id := range unlocked {
		s.log.Info("achievement unlocked", zap.String("achievement", string(id)))
	}
	return unlocked, nil
}

func (s *Session) generationFailed(mode quiz.Mode, err error) {
	if s.rec != nil {
		s.rec.GenerationFailed(mode)
	}
	var poolErr *quiz.InsufficientPoolError
	if errors.As(err, &poolErr) {
		s.log.Error("distractor pool exhausted", zap.String("mode", string(mode)), zap.Error(err))
		return
	}
	s.log.Warn("generation failed", zap.String("mode", string(mode)), zap.Error(err))
}
