// Package dispatch classifies input lines and routes them to builtins, the
// natural-language translator or the host shell.
package dispatch

import (
	"context"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"

	"github.com/abhinav4568482/pyterminal/internal/builtins"
	"github.com/abhinav4568482/pyterminal/internal/core/history"
	"github.com/abhinav4568482/pyterminal/internal/core/logging"
	"github.com/abhinav4568482/pyterminal/internal/core/result"
	"github.com/abhinav4568482/pyterminal/internal/core/session"
	"github.com/abhinav4568482/pyterminal/internal/translate"
	"github.com/abhinav4568482/pyterminal/pkg/executil"
)

// maxDepth bounds re-entry with translated output. At depth 1 the translator
// routes are off, so a translator that echoes a phrase back cannot loop.
const maxDepth = 1

// Options configures a Dispatcher. Nil collaborators get working defaults:
// the full builtin set, a disabled translator, a ShellRunner with default
// limits and an unbounded in-memory history.
type Options struct {
	Registry     *builtins.Registry
	Translator   translate.Translator
	Shell        executil.Runner
	History      history.Store
	HomeDir      string
	DisplayLimit int
}

// Dispatcher is safe for concurrent use by many sessions.
type Dispatcher struct {
	registry     *builtins.Registry
	translator   translate.Translator
	shell        executil.Runner
	history      history.Store
	homeDir      string
	displayLimit int
	log          zerolog.Logger
}

// New creates a dispatcher.
func New(opts Options) *Dispatcher {
	d := &Dispatcher{
		registry:     opts.Registry,
		translator:   opts.Translator,
		shell:        opts.Shell,
		history:      opts.History,
		homeDir:      opts.HomeDir,
		displayLimit: opts.DisplayLimit,
		log:          logging.Component("dispatch"),
	}
	if d.registry == nil {
		d.registry = builtins.NewRegistry(nil)
	}
	if d.translator == nil {
		d.translator = translate.Disabled{}
	}
	if d.shell == nil {
		d.shell = executil.NewShellRunner(0, 0)
	}
	if d.history == nil {
		d.history = history.NewMemoryStore(0)
	}
	return d
}

// Registry returns the builtin registry used for classification.
func (d *Dispatcher) Registry() *builtins.Registry { return d.registry }

// Translator returns the configured translator.
func (d *Dispatcher) Translator() translate.Translator { return d.translator }

// History returns the store dispatches are recorded in.
func (d *Dispatcher) History() history.Store { return d.history }

// IsExit reports whether line asks to end the session.
func IsExit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit", "q":
		return true
	}
	return false
}

// Dispatch runs one line for sess and records the outcome in its history.
// Exit requests and empty lines are not recorded. Dispatch never panics.
func (d *Dispatcher) Dispatch(ctx context.Context, sess *session.Session, line string) result.Result {
	ctx = logging.WithSessionID(ctx, sess.ID)

	trimmed := strings.TrimSpace(line)
	if IsExit(trimmed) {
		return result.Exit()
	}
	if trimmed == "" {
		return result.Fail(result.CodeEmptyInput, "Empty command")
	}

	res := d.dispatch(ctx, sess, trimmed, 0)
	d.record(ctx, sess, trimmed, res)
	return res
}

func (d *Dispatcher) dispatch(ctx context.Context, sess *session.Session, line string, depth int) (res result.Result) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Ctx(ctx).
				Interface("panic", r).
				Str("stack", string(debug.Stack())).
				Str("line", line).
				Msg("handler panicked")
			res = result.Fail(result.CodeGenericIO, "internal error: %v", r)
		}
	}()

	in := Parse(line)
	if in.Command == "" {
		return result.Fail(result.CodeEmptyInput, "Empty command")
	}

	translatorEnabled := depth < maxDepth && d.translator.Enabled()
	route := Classify(in, d.registry.Reserved, translatorEnabled)
	ctx = logging.WithRoute(ctx, route.String())

	d.log.Debug().Ctx(ctx).
		Str("command", in.Command).
		Int("depth", depth).
		Msg("dispatching")

	switch route {
	case RouteTranslate:
		return d.translate(ctx, sess, line, depth)
	case RouteBuiltin:
		h, _ := d.registry.Lookup(in.Command)
		return h(ctx, d.env(sess), in.Args)
	default:
		return d.shell.Run(ctx, sess.Dir(), line)
	}
}

func (d *Dispatcher) translate(ctx context.Context, sess *session.Session, line string, depth int) result.Result {
	command, err := d.translator.Translate(ctx, line)
	if err != nil {
		d.log.Warn().Ctx(ctx).Err(err).Msg("translation failed")
		return result.FromError(err)
	}

	d.log.Info().Ctx(ctx).Str("translated", command).Msg("translated instruction")

	res := d.dispatch(ctx, sess, command, depth+1)
	res.Translated = command
	return res
}

func (d *Dispatcher) env(sess *session.Session) *builtins.Env {
	return &builtins.Env{
		Session:          sess,
		History:          d.history,
		HomeDir:          d.homeDir,
		TranslatorStatus: translate.Status(d.translator),
		DisplayLimit:     d.displayLimit,
	}
}

func (d *Dispatcher) record(ctx context.Context, sess *session.Session, line string, res result.Result) {
	entry := history.Entry{
		Command:   line,
		Output:    res.Output,
		Succeeded: res.Succeeded(),
	}
	if err := d.history.Append(ctx, sess.ID, entry); err != nil {
		d.log.Error().Ctx(ctx).Err(err).Msg("failed to record history")
	}
}
