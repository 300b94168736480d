// Package executil runs command lines through the host shell.
package executil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/abhinav4568482/pyterminal/internal/core/result"
)

const (
	// DefaultTimeout bounds a single external command.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxOutput caps stdout and stderr independently.
	DefaultMaxOutput = 1 << 20

	truncatedMarker = "\n[output truncated]"
	waitDelay       = 2 * time.Second
)

// limitedWriter caps writes to a bytes.Buffer at a maximum byte count.
// Bytes beyond the limit are silently discarded.
type limitedWriter struct {
	buf       bytes.Buffer
	n         int64
	max       int64
	truncated bool
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if w.n >= w.max {
		if len(p) > 0 {
			w.truncated = true
		}
		return len(p), nil
	}
	remaining := w.max - w.n
	origLen := len(p)
	if int64(origLen) > remaining {
		p = p[:remaining]
		w.truncated = true
	}
	n, err := w.buf.Write(p)
	w.n += int64(n)
	if err != nil {
		return n, err
	}
	return origLen, nil
}

// String returns the captured text, marked when bytes were dropped.
func (w *limitedWriter) String() string {
	if w.truncated {
		return w.buf.String() + truncatedMarker
	}
	return w.buf.String()
}

// Runner forwards a literal command line to the host shell.
type Runner interface {
	Run(ctx context.Context, dir, line string) result.Result
}

// ShellRunner runs command lines with `sh -c` (`cmd /C` on Windows).
//
// Each command runs in its own process group. When the timeout expires the
// whole group is killed, so grandchildren started by the shell die with it.
type ShellRunner struct {
	Timeout   time.Duration
	MaxOutput int64
}

var _ Runner = (*ShellRunner)(nil)

// NewShellRunner returns a runner; zero values select the defaults.
func NewShellRunner(timeout time.Duration, maxOutput int64) *ShellRunner {
	return &ShellRunner{Timeout: timeout, MaxOutput: maxOutput}
}

func (r *ShellRunner) timeout() time.Duration {
	if r.Timeout <= 0 {
		return DefaultTimeout
	}
	return r.Timeout
}

func (r *ShellRunner) maxOutput() int64 {
	if r.MaxOutput <= 0 {
		return DefaultMaxOutput
	}
	return r.MaxOutput
}

// Run executes line in dir (empty means inherit cwd) and maps the outcome
// onto a result. Success means exit status 0; stderr of a successful command
// is returned as a warning.
func (r *ShellRunner) Run(ctx context.Context, dir, line string) result.Result {
	timeout := r.timeout()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	name, args := shellCommand(line)
	c := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		c.Dir = dir
	}
	configureProcess(c)
	c.WaitDelay = waitDelay

	stdout := &limitedWriter{max: r.maxOutput()}
	stderr := &limitedWriter{max: r.maxOutput()}
	c.Stdout = stdout
	c.Stderr = stderr

	err := c.Run()
	out := stdout.String()
	errText := strings.TrimSpace(stderr.String())

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return result.Fail(result.CodeTimeout, "command timed out after %s", timeout)
	case errors.Is(ctx.Err(), context.Canceled):
		return result.Fail(result.CodeGenericIO, "command cancelled")
	case err == nil:
		if errText != "" {
			return result.OKWithWarning(out, errText)
		}
		return result.OK(out)
	case errors.Is(err, exec.ErrNotFound):
		return result.Fail(result.CodeCommandNotFound, "command not found: %s", name)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code == notFoundExitCode {
			return result.Fail(result.CodeCommandNotFound, "command not found: %s", firstWord(line))
		}
		msg := errText
		if msg == "" {
			msg = fmt.Sprintf("exit status %d", code)
		}
		res := result.FromError(result.Errorf(result.CodeCommandFailed, "%s", msg))
		res.Output = out
		return res
	}

	return result.FromError(result.Wrap(result.CodeGenericIO, err, "error executing external command: %v", err))
}

func firstWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "command"
	}
	return fields[0]
}
