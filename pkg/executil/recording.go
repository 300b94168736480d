package executil

import (
	"context"
	"sync"

	"github.com/abhinav4568482/pyterminal/internal/core/result"
)

// RecordedCommand captures a command line that was forwarded.
type RecordedCommand struct {
	Dir  string
	Line string
}

// RecordingRunner captures command lines for testing.
// Configure Results to control return values; unknown lines return Default.
type RecordingRunner struct {
	mu       sync.Mutex
	Commands []RecordedCommand

	// Results maps a full command line to its result.
	Results map[string]result.Result

	// Default is returned for lines missing from Results.
	Default result.Result
}

var _ Runner = (*RecordingRunner)(nil)

// Run records the line and returns the configured result.
func (r *RecordingRunner) Run(_ context.Context, dir, line string) result.Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Commands = append(r.Commands, RecordedCommand{Dir: dir, Line: line})

	if res, ok := r.Results[line]; ok {
		return res
	}
	return r.Default
}

// Lines returns the recorded command lines in order.
func (r *RecordingRunner) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := make([]string, len(r.Commands))
	for i, c := range r.Commands {
		lines[i] = c.Line
	}
	return lines
}

// Reset clears recorded commands.
func (r *RecordingRunner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Commands = nil
}
