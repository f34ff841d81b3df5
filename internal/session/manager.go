package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when there is no session with the id.
var ErrNotFound = errors.New("session not found")

// DefaultTTL is how long an idle session lives.
const DefaultTTL = 30 * time.Minute

// Manager owns live sessions and evicts idle ones.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	ttl   time.Duration
	opts  Options
	newID func() string
}

// NewManager returns a manager creating sessions with the options.
func NewManager(ttl time.Duration, opts Options) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Manager{
		sessions: map[string]*Session{},
		ttl:      ttl,
		opts:     opts,
		newID:    uuid.NewString,
	}
}

// Create starts a new session.
func (m *Manager) Create() *Session {
	s := New(m.newID(), m.opts)

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()

	m.opts.Metrics.incCreated()
	log.WithField("session", s.ID()).Debug("session created")

	return s
}

// Get returns a live session by id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}

	return s, nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

// Evict closes and forgets sessions idle for longer than ttl. It returns the number of evicted sessions.
func (m *Manager) Evict() int {
	deadline := m.opts.Now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()

	var n int
	for id, s := range m.sessions {
		if s.LastActive().Before(deadline) {
			s.Close()
			delete(m.sessions, id)
			m.opts.Metrics.incEvicted()
			n++
		}
	}

	return n
}

// Run evicts idle sessions periodically until ctx is done. All sessions are closed on exit.
func (m *Manager) Run(ctx context.Context) error {
	t := time.NewTicker(m.ttl / 2)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			m.closeAll()
			return nil
		case <-t.C:
			if n := m.Evict(); n > 0 {
				log.WithField("count", n).Info("evicted idle sessions")
			}
		}
	}
}

func (m *Manager) closeAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, s := range m.sessions {
		s.Close()
		delete(m.sessions, id)
		m.opts.Metrics.incEvicted()
	}
}

// Ping reports the number of live sessions to health checks.
func (m *Manager) Ping(_ context.Context) (interface{}, error) {
	return map[string]int{"sessions": m.Len()}, nil
}

// Name ...
func (m *Manager) Name() string {
	return "sessions"
}
