package core

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JonMunkholm/explore/internal/dataset"
)

var (
	// ErrSessionNotFound is returned for unknown or expired session ids.
	ErrSessionNotFound = errors.New("session not found")
	// ErrNoTable is returned when a session has no dataset loaded.
	ErrNoTable = errors.New("no table loaded")
)

const (
	DefaultSessionTTL  = 2 * time.Hour
	DefaultMaxSessions = 1000
)

type session struct {
	id       string
	table    *dataset.Table
	lastSeen time.Time
}

// sessionStore keeps sessions in memory. Expired entries are removed when
// the store is touched; there is no background sweeper.
type sessionStore struct {
	ttl time.Duration
	max int
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

func newSessionStore(ttl time.Duration, max int) *sessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if max <= 0 {
		max = DefaultMaxSessions
	}
	return &sessionStore{
		ttl:      ttl,
		max:      max,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// create starts an empty session, evicting the least recently used one when
// the store is full.
func (s *sessionStore) create() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)
	if len(s.sessions) >= s.max {
		s.evictOldestLocked()
	}

	id := uuid.New().String()
	s.sessions[id] = &session{id: id, lastSeen: now}
	return id
}

// get returns a live session and refreshes its expiry.
func (s *sessionStore) get(id string) (*session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	sess.lastSeen = now
	return sess, nil
}

// setTable replaces the session's table; nil clears it.
func (s *sessionStore) setTable(id string, t *dataset.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	sess.table = t
	sess.lastSeen = s.now()
	return nil
}

func (s *sessionStore) table(id string) (*dataset.Table, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess.table == nil {
		return nil, ErrNoTable
	}
	return sess.table, nil
}

func (s *sessionStore) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *sessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(s.now())
	return len(s.sessions)
}

func (s *sessionStore) sweepLocked(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

func (s *sessionStore) evictOldestLocked() {
	var oldest *session
	for _, sess := range s.sessions {
		if oldest == nil || sess.lastSeen.Before(oldest.lastSeen) {
			oldest = sess
		}
	}
	if oldest != nil {
		delete(s.sessions, oldest.id)
	}
}
