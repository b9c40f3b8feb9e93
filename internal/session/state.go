package session

import (
	"fmt"
	"maps"

	"github.com/abhisek/lymphiz/internal/achievements"
	"github.com/abhisek/lymphiz/internal/quiz"
)

// ModeScore counts graded answers for one quiz mode.
type ModeScore struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// Accuracy returns Score/Total, or 0 before any answer.
func (m ModeScore) Accuracy() float64 {
	if m.Total == 0 {
		return 0
	}
	return float64(m.Score) / float64(m.Total)
}

// State is the score and achievement state of one session. It changes only
// through Record and Reset.
type State struct {
	Quiz         ModeScore
	ClinicalCase ModeScore
	Sequence     ModeScore

	TotalScore     int
	TotalQuestions int

	Achievements achievements.Set
}

// NewState returns zeroed counters with no achievements.
func NewState() *State {
	return &State{Achievements: achievements.Set{}}
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	c := *s
	c.Achievements = maps.Clone(s.Achievements)
	if c.Achievements == nil {
		c.Achievements = achievements.Set{}
	}
	return &c
}

func (s *State) mode(m quiz.Mode) *ModeScore {
	switch m {
	case quiz.ModeNextStep:
		return &s.Quiz
	case quiz.ModeClinicalCase:
		return &s.ClinicalCase
	case quiz.ModeSequence:
		return &s.Sequence
	}
	return nil
}

// Mode returns the counters of m.
func (s *State) Mode(m quiz.Mode) ModeScore {
	if ms := s.mode(m); ms != nil {
		return *ms
	}
	return ModeScore{}
}

// Counters returns the aggregate counters.
func (s *State) Counters() achievements.Counters {
	return achievements.Counters{TotalScore: s.TotalScore, TotalQuestions: s.TotalQuestions}
}

// Record applies one graded answer and returns the achievements it unlocked.
func (s *State) Record(m quiz.Mode, correct bool) ([]achievements.ID, error) {
	ms := s.mode(m)
	if ms == nil {
		return nil, fmt.Errorf("record answer: unknown mode %q", m)
	}

	ms.Total++
	s.TotalQuestions++
	if correct {
		ms.Score++
		s.TotalScore++
	}

	return s.Evaluate(), nil
}

// Evaluate unlocks every achievement the current counters satisfy and
// returns the ones that were not already unlocked.
func (s *State) Evaluate() []achievements.ID {
	fresh := achievements.Evaluate(s.Counters(), s.Achievements)
	s.Achievements.Add(fresh...)
	return fresh
}

// Reset zeroes every counter and clears all achievements.
func (s *State) Reset() {
	s.Quiz = ModeScore{}
	s.ClinicalCase = ModeScore{}
	s.Sequence = ModeScore{}
	s.TotalScore = 0
	s.TotalQuestions = 0
	s.Achievements.Clear()
}
