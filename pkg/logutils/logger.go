// Package logutils builds the process-wide zerolog logger.
package logutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger at the given level (debug, info, warn, error, fatal).
//
// With a file, events are appended as JSON so a REPL and a server can share
// one log. Without a file, events go to stderr through a console writer, never
// stdout, which carries command output.
func New(level string, file string) (zerolog.Logger, func(), error) {
	return newWithStderr(level, file, os.Stderr)
}

func newWithStderr(level, file string, stderr io.Writer) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("parse log level %q: %w", level, err)
	}

	var writer io.Writer = zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen, NoColor: true}
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create logs dir: %w", err)
		}

		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("open log file: %w", err)
		}
		closer = func() { _ = f.Close() }
		writer = f
	}

	l := zerolog.New(writer).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return l, closer, nil
}
