package session

import (
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/lymphiz/internal/quiz"
)

// ManagerConfig configures a Manager.
type ManagerConfig struct {
	// Seed drives every per-session random source. Zero picks a time seed.
	Seed uint64

	// TTL is how long an idle session survives Sweep. Zero disables expiry.
	TTL time.Duration

	Logger   *zap.Logger
	Recorder Recorder
}

// Manager keeps independent sessions keyed by id. The engine and dataset
// are shared; all mutable state lives in each Session.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	engine   *quiz.Engine
	seeds    *rand.Rand
	ttl      time.Duration
	log      *zap.Logger
	rec      Recorder
	now      func() time.Time
}

// NewManager creates an empty Manager.
func NewManager(engine *quiz.Engine, cfg ManagerConfig) *Manager {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		engine:   engine,
		seeds:    quiz.NewRand(cfg.Seed),
		ttl:      cfg.TTL,
		log:      log,
		rec:      cfg.Recorder,
		now:      time.Now,
	}
}

// Create starts a new session with its own random source.
func (m *Manager) Create() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := New(m.engine, quiz.NewRand(m.seeds.Uint64()|1), m.log, m.rec)
	s.CreatedAt = m.now()
	s.LastSeen = s.CreatedAt
	m.sessions[s.ID] = s
	m.log.Info("session created", zap.String("session", s.ID), zap.Int("active", len(m.sessions)))
	return s
}

// Get returns the session with id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return s, nil
}

// Do runs fn with the session locked and marks it as recently used.
func (m *Manager) Do(id string, fn func(*Session) error) error {
	s, err := m.Get(id)
	if err != nil {
		return err
	}
	s.Lock()
	defer s.Unlock()
	s.LastSeen = m.now()
	return fn(s)
}

// Delete removes a session. It reports whether the session existed.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	m.log.Info("session deleted", zap.String("session", id))
	return true
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep removes sessions idle for longer than the TTL and returns how many
// were removed.
func (m *Manager) Sweep() int {
	if m.ttl <= 0 {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-m.ttl)
	removed := 0
	for id, s := range m.sessions {
		s.Lock()
		idle := s.LastSeen.Before(cutoff)
		s.Unlock()
		if idle {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.log.Info("expired idle sessions", zap.Int("removed", removed), zap.Int("active", len(m.sessions)))
	}
	return removed
}
