package commands

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/abhinav4568482/pyterminal/internal/tui"
)

type ReplCmd struct {
	flags *Flags
	app   *App
}

// NewReplCmd creates the interactive prompt command.
func NewReplCmd(flags *Flags, app *App) *ReplCmd {
	return &ReplCmd{flags: flags, app: app}
}

// Register adds the repl command to the application.
func (cmd *ReplCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "repl",
		Usage:     "Start the interactive prompt",
		UsageText: "pyterminal repl",
		Description: `Starts an interactive prompt. Builtins run in-process, natural-language
requests go through the translator when a credential is configured and
everything else runs in the host shell.

When stdin is not a terminal, one command is read per line instead.`,
		Action: cmd.Run,
	})
	return app
}

// Run executes the prompt. Exported for use as the default action.
func (cmd *ReplCmd) Run(ctx context.Context, c *cli.Command) error {
	sess := cmd.app.Sessions.Create()
	log.Debug().Str("session_id", sess.ID).Str("dir", sess.Dir()).Msg("starting repl")

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return tui.RunLines(ctx, cmd.app.Dispatcher, sess, os.Stdin, c.Root().Writer)
	}

	return tui.Run(ctx, tui.Options{
		Dispatcher: cmd.app.Dispatcher,
		Session:    sess,
		Completer:  tui.NewCompleter(cmd.app.Dispatcher.Registry().Names(), cmd.app.HomeDir),
		Translator: cmd.app.Dispatcher.Translator(),
	}, os.Stdin, os.Stdout)
}
