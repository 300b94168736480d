package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhinav4568482/pyterminal/pkg/kv"
)

// Manager creates and looks up sessions. Sessions live until the process exits.
type Manager struct {
	sessions *kv.Store[string, *Session]
	baseDir  string
	now      func() time.Time
	newID    func() string
}

// NewManager returns a manager whose new sessions start in baseDir.
func NewManager(baseDir string) *Manager {
	return &Manager{
		sessions: kv.New[string, *Session](),
		baseDir:  baseDir,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Create starts a new session with a fresh token.
func (m *Manager) Create() *Session {
	for {
		id := m.newID()
		s, created := m.sessions.GetOrCreate(id, func() *Session {
			return New(id, m.baseDir, m.now())
		})
		if created {
			return s
		}
	}
}

// Get returns the session for token, if it exists.
func (m *Manager) Get(token string) (*Session, bool) {
	if token == "" {
		return nil, false
	}
	return m.sessions.Get(token)
}

// Resolve returns the session for token, creating a new one when the token is
// empty or unknown. The boolean reports whether a session was created; callers
// must hand the new token back to the client in that case.
func (m *Manager) Resolve(token string) (*Session, bool) {
	if s, ok := m.Get(token); ok {
		return s, false
	}
	return m.Create(), true
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	return m.sessions.Len()
}
