// Package history defines command history domain types and interfaces.
package history

import (
	"context"
	"errors"
	"time"
)

// DisplayLimit is the number of entries shown by default when history is
// rendered for a person.
const DisplayLimit = 20

// ErrNoSession is returned when a session id is empty.
var ErrNoSession = errors.New("session id is required")

// Entry represents a recorded dispatch.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	// Command is the raw line as typed, never the translated command.
	Command   string `json:"command"`
	Output    string `json:"output"`
	Succeeded bool   `json:"success"`
}

// Failed returns true if the dispatch did not succeed.
func (e *Entry) Failed() bool {
	return !e.Succeeded
}

// Store is an append-only ledger of entries keyed by session id.
type Store interface {
	// Append records e at the end of the session's ledger.
	Append(ctx context.Context, sessionID string, e Entry) error
	// List returns the session's entries oldest first. A positive limit keeps
	// only the most recent limit entries.
	List(ctx context.Context, sessionID string, limit int) ([]Entry, error)
}
