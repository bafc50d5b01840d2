package server

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lplab/internal/pipeline"
)

// ErrSessionNotFound is returned for an unknown or expired session id.
var ErrSessionNotFound = errors.New("server: session not found")

// entry serialises access to one session.
type entry struct {
	mu      sync.Mutex
	session pipeline.Session
	touched time.Time
}

// store is an in-memory session table.
type store struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry
	ttl     time.Duration
	now     func() time.Time
}

func newStore(ttl time.Duration) *store {
	return &store{entries: make(map[uuid.UUID]*entry), ttl: ttl, now: time.Now}
}

func (s *store) add(sess pipeline.Session) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	id := uuid.New()
	s.entries[id] = &entry{session: sess, touched: s.now()}

	return id
}

// with runs fn on the session under its own lock.
func (s *store) with(id uuid.UUID, fn func(pipeline.Session) error) error {
	s.mu.Lock()
	e, ok := s.entries[id]
	if ok {
		e.touched = s.now()
	}
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return fn(e.session)
}

func (s *store) remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.entries[id]
	delete(s.entries, id)

	return ok
}

func (s *store) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// sweep drops idle sessions; the caller holds s.mu.
func (s *store) sweep() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for id, e := range s.entries {
		if e.touched.Before(cutoff) {
			delete(s.entries, id)
		}
	}
}
