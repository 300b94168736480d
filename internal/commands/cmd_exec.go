package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/abhinav4568482/pyterminal/internal/core/result"
	"github.com/abhinav4568482/pyterminal/internal/tui"
	"github.com/abhinav4568482/pyterminal/pkg/iojson"
)

type ExecCmd struct {
	flags  *Flags
	app    *App
	asJSON bool
}

// NewExecCmd creates the one-shot dispatch command.
func NewExecCmd(flags *Flags, app *App) *ExecCmd {
	return &ExecCmd{flags: flags, app: app}
}

// Register adds the exec command to the application.
func (cmd *ExecCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "exec",
		Usage:     "Run a single command line and exit",
		UsageText: "pyterminal exec [--json] <command...>",
		Description: `Dispatches one line exactly as the prompt would and prints the outcome.
Exits with status 1 when the command fails.

Examples:
  pyterminal exec ls
  pyterminal exec --json "show me the files here"`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the result as JSON",
				Destination: &cmd.asJSON,
			},
		},
		Action: cmd.run,
	})
	return app
}

// ExecOutput is the JSON shape printed by exec --json.
type ExecOutput struct {
	Success    bool        `json:"success"`
	Status     string      `json:"status"`
	Output     string      `json:"output"`
	Error      string      `json:"error,omitempty"`
	Code       result.Code `json:"code,omitempty"`
	Translated string      `json:"translated,omitempty"`
	CurrentDir string      `json:"current_dir"`
}

func (cmd *ExecCmd) run(ctx context.Context, c *cli.Command) error {
	line := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(line) == "" {
		return errors.New("missing command. Usage: pyterminal exec <command...>")
	}

	sess := cmd.app.Sessions.Create()
	res := cmd.app.Dispatcher.Dispatch(ctx, sess, line)

	w := c.Root().Writer
	if cmd.asJSON {
		out := ExecOutput{
			Success:    res.Succeeded(),
			Status:     res.Status.String(),
			Output:     res.Output,
			Error:      res.ErrorMessage(),
			Code:       res.Code(),
			Translated: res.Translated,
			CurrentDir: sess.Dir(),
		}
		if err := iojson.WriteWith(w, c.Root().ErrWriter, out); err != nil {
			return err
		}
	} else if rendered := tui.RenderResult(res); rendered != "" {
		if _, err := fmt.Fprintln(w, rendered); err != nil {
			return err
		}
	}

	if !res.Succeeded() {
		return cli.Exit("", 1)
	}
	return nil
}
