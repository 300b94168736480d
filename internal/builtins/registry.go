// Package builtins implements the commands pyterminal runs in-process
// instead of forwarding to the host shell.
package builtins

import (
	"context"
	"sort"

	"github.com/abhinav4568482/pyterminal/internal/core/result"
)

// Handler runs one builtin with the tokens that followed the command word.
type Handler func(ctx context.Context, env *Env, args []string) result.Result

// Registry maps command words to handlers. It is built once and never
// mutated, so lookups need no locking.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry returns the full builtin set. stats supplies cpu, memory and
// process figures; nil selects the host implementation.
func NewRegistry(stats SystemStats) *Registry {
	if stats == nil {
		stats = HostStats{}
	}
	sys := sysHandlers{stats: stats}

	return &Registry{handlers: map[string]Handler{
		"pwd":                   pwd,
		"ls":                    ls,
		"cd":                    cd,
		"mkdir":                 mkdir,
		"rm":                    rm,
		"cat":                   cat,
		"cpu":                   sys.cpu,
		"mem":                   sys.memory,
		"memory":                sys.memory,
		"processes":             sys.processes,
		"ps":                    sys.processes,
		"help":                  help,
		"tellmeabout_developer": developer,
		"clear":                 clearScreen,
		"history":               showHistory,
	}}
}

// Lookup returns the handler registered for word.
func (r *Registry) Lookup(word string) (Handler, bool) {
	h, ok := r.handlers[word]
	return h, ok
}

// Reserved reports whether word names a builtin.
func (r *Registry) Reserved(word string) bool {
	_, ok := r.handlers[word]
	return ok
}

// Names returns every command word, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
