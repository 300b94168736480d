// Package session defines session domain types and the in-memory registry.
package session

import (
	"path/filepath"
	"sync"
	"time"
)

// Session is a caller-scoped unit of state identified by an opaque token.
//
// Each session tracks its own logical working directory. Builtins resolve
// relative paths against it and external commands start in it, so a cd in
// one session never moves another.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	mu  sync.RWMutex
	dir string
}

// New creates a session rooted at dir.
func New(id, dir string, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		dir:       filepath.Clean(dir),
	}
}

// Dir returns the session's current working directory.
func (s *Session) Dir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir
}

// SetDir replaces the session's working directory. dir must be absolute.
func (s *Session) SetDir(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dir = filepath.Clean(dir)
}

// Resolve returns p as an absolute, cleaned path. Relative paths are joined
// onto the session's working directory.
func (s *Session) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(s.Dir(), p)
}
