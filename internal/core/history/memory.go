package history

import (
	"context"
	"sync"
	"time"

	"github.com/abhinav4568482/pyterminal/pkg/kv"
	"github.com/abhinav4568482/pyterminal/pkg/randid"
)

// ledger holds one session's entries. Each ledger has its own lock so
// sessions never contend with each other.
type ledger struct {
	mu      sync.Mutex
	entries []Entry
}

// MemoryStore is a process-resident Store. Nothing survives a restart.
type MemoryStore struct {
	ledgers   *kv.Store[string, *ledger]
	retention int
	now       func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an in-memory store. retention caps the number of
// entries kept per session; 0 means unlimited.
func NewMemoryStore(retention int) *MemoryStore {
	return &MemoryStore{
		ledgers:   kv.New[string, *ledger](),
		retention: retention,
		now:       time.Now,
	}
}

// Append records e for the session. Zero ID and Timestamp fields are filled in.
func (s *MemoryStore) Append(_ context.Context, sessionID string, e Entry) error {
	if sessionID == "" {
		return ErrNoSession
	}
	if e.ID == "" {
		e.ID = randid.Generate(8)
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = s.now()
	}

	l, _ := s.ledgers.GetOrCreate(sessionID, func() *ledger { return &ledger{} })

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
	if s.retention > 0 && len(l.entries) > s.retention {
		drop := len(l.entries) - s.retention
		l.entries = append([]Entry(nil), l.entries[drop:]...)
	}
	return nil
}

// List returns a copy of the session's entries, oldest first.
func (s *MemoryStore) List(_ context.Context, sessionID string, limit int) ([]Entry, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}

	l, ok := s.ledgers.Get(sessionID)
	if !ok {
		return []Entry{}, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entries := l.entries
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out, nil
}

// Sessions returns the number of sessions with at least one entry.
func (s *MemoryStore) Sessions() int {
	return s.ledgers.Len()
}
