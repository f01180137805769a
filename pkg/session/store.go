// pkg/session/store.go
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the server-side state behind one opaque cookie token.
type Session struct {
	AdminID   uint
	FullName  string
	ExpiresAt time.Time
}

// Store maps opaque tokens to sessions. It is injected where needed,
// never held as a process-wide global.
type Store struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]Session
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:      ttl,
		sessions: make(map[string]Session),
	}
}

// Create issues a fresh token for the admin and returns it.
func (s *Store) Create(adminID uint, fullName string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = Session{
		AdminID:   adminID,
		FullName:  fullName,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()
	return token
}

// Get resolves a token. Expired sessions count as absent and are
// dropped on the spot.
func (s *Store) Get(token string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return Session{}, false
	}
	if time.Now().After(sess.ExpiresAt) {
		s.Delete(token)
		return Session{}, false
	}
	return sess, true
}

// Delete destroys the session unconditionally. Unknown tokens are fine.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
