package builtins

import (
	"path/filepath"
	"strings"

	"github.com/abhinav4568482/pyterminal/internal/core/history"
	"github.com/abhinav4568482/pyterminal/internal/core/session"
)

// Env is what a handler may see of the caller's session.
type Env struct {
	Session *session.Session
	History history.Store
	// HomeDir backs ~ expansion in cd.
	HomeDir string
	// TranslatorStatus is shown by help, e.g. "Enabled (openai)".
	TranslatorStatus string
	// DisplayLimit bounds the history listing; zero means history.DisplayLimit.
	DisplayLimit int
}

// Dir returns the session's logical working directory.
func (e *Env) Dir() string {
	return e.Session.Dir()
}

// Resolve makes p absolute against the session directory, expanding a
// leading ~ to the home directory.
func (e *Env) Resolve(p string) string {
	if e.HomeDir != "" && (p == "~" || strings.HasPrefix(p, "~/")) {
		p = filepath.Join(e.HomeDir, strings.TrimPrefix(p, "~"))
	}
	return e.Session.Resolve(p)
}

func (e *Env) displayLimit() int {
	if e.DisplayLimit > 0 {
		return e.DisplayLimit
	}
	return history.DisplayLimit
}
