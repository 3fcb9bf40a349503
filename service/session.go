package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wkchan/ifa-report-service/dto"
)

// Session holds one advisor's current report profile. A new parse for
// the same session replaces the profile wholesale; field edits and item
// additions mutate it in place. The session mutex serializes those
// mutations against report reads, since gin serves requests for the
// same session concurrently.
type Session struct {
	ID        string
	Profile   *dto.ClientProfile
	CreatedAt time.Time
	UpdatedAt time.Time

	mu sync.Mutex
}

// Edit runs fn with exclusive access to the profile and stamps the
// mutation time when fn succeeds.
func (s *Session) Edit(fn func(*dto.ClientProfile) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.Profile); err != nil {
		return err
	}
	s.UpdatedAt = time.Now()
	return nil
}

// View runs fn while the session is locked, so readers never observe a
// half-applied edit.
func (s *Session) View(fn func(p *dto.ClientProfile, updatedAt time.Time)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.Profile, s.UpdatedAt)
}

// SessionStore owns every live session. All access goes through the
// store so no profile is ever held as ambient global state. The store
// mutex guards the map only; per-session state is guarded by the
// session's own mutex.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	newID    func() string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		newID:    uuid.NewString,
	}
}

// Create registers a new session around a freshly parsed profile.
func (s *SessionStore) Create(profile *dto.ClientProfile) *Session {
	now := time.Now()
	session := &Session{
		ID:        s.newID(),
		Profile:   profile,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session
}

// Get looks up a session by ID.
func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, dto.ErrNoSuchRecord
	}
	return session, nil
}
