package server

import (
	"errors"
	"sync"

	"github.com/yarayan327-hash/math-test-KSA-material/internal/conic"
	"github.com/yarayan327-hash/math-test-KSA-material/internal/tutor"
)

// DefaultMaxSessions caps how many tutor sessions one process keeps.
const DefaultMaxSessions = 1024

var (
	ErrSessionNotFound = errors.New("server: session not found")
	ErrStoreFull       = errors.New("server: too many sessions")
)

// SessionStore keeps tutor sessions in memory for the life of the process.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*tutor.Session
	gen      tutor.Generator
	opts     []tutor.Option
	max      int
}

// NewSessionStore creates sessions that share gen and opts. max <= 0 uses
// DefaultMaxSessions.
func NewSessionStore(gen tutor.Generator, max int, opts ...tutor.Option) *SessionStore {
	if max <= 0 {
		max = DefaultMaxSessions
	}
	return &SessionStore{
		sessions: make(map[string]*tutor.Session),
		gen:      gen,
		opts:     opts,
		max:      max,
	}
}

func (s *SessionStore) Create(topic conic.Topic) (*tutor.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.sessions) >= s.max {
		return nil, ErrStoreFull
	}
	opts := append(append([]tutor.Option{}, s.opts...), tutor.WithTopic(topic))
	sess := tutor.NewSession(s.gen, opts...)
	s.sessions[sess.ID()] = sess
	return sess, nil
}

func (s *SessionStore) Get(id string) (*tutor.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
