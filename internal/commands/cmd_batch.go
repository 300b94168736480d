package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/abhinav4568482/pyterminal/internal/core/logging"
	"github.com/abhinav4568482/pyterminal/internal/core/result"
	"github.com/abhinav4568482/pyterminal/pkg/iojson"
	"github.com/abhinav4568482/pyterminal/pkg/randid"
)

type BatchCmd struct {
	flags *Flags
	app   *App
	fr    *iojson.FileReader[BatchInput]
}

func NewBatchCmd(flags *Flags, app *App) *BatchCmd {
	return &BatchCmd{
		flags: flags,
		app:   app,
		fr:    &iojson.FileReader[BatchInput]{},
	}
}

func (cmd *BatchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "batch",
		Usage: "Run a list of command lines from JSON input",
		UsageText: `pyterminal batch [options]

Read from stdin:
  echo '{"commands":["mkdir demo","cd demo","pwd"]}' | pyterminal batch

Read from file:
  pyterminal batch -f commands.json`,
		Description: `Runs command lines in order inside one session, so cd carries over from
one line to the next.

Processing stops after 3 failures. Lines not attempted are marked as skipped.

Input JSON schema:
  {
    "commands": ["line", "line", ...]
  }

Output is JSON with a batch ID, the session's final directory and one
result per line.`,
		Flags: []cli.Flag{
			cmd.fr.Flag(),
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *BatchCmd) run(ctx context.Context, c *cli.Command) error {
	batchID := randid.Generate(6)
	logger := logging.Component("batch").With().Str("batch_id", batchID).Logger()

	logger.Info().Msg("starting batch processing")

	input, err := cmd.fr.Read()
	if err != nil {
		logger.Error().Err(err).Msg("failed to read input")
		return iojson.WriteError(c.Root().ErrWriter, fmt.Sprintf("read input: %s", err), nil)
	}

	if err := input.Validate(); err != nil {
		logger.Error().Err(err).Msg("input validation failed")
		return iojson.WriteError(c.Root().ErrWriter, fmt.Sprintf("invalid input: %s", err), nil)
	}

	output := cmd.runBatch(ctx, batchID, input)

	logger.Info().
		Int("total", len(input.Commands)).
		Int("succeeded", countByStatus(output.Results, StatusSucceeded)).
		Int("failed", countByStatus(output.Results, StatusFailed)).
		Int("skipped", countByStatus(output.Results, StatusSkipped)).
		Msg("batch processing complete")

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, output)
}

func (cmd *BatchCmd) runBatch(ctx context.Context, batchID string, input BatchInput) BatchOutput {
	sess := cmd.app.Sessions.Create()
	ctx = logging.WithSessionID(ctx, sess.ID)

	output := BatchOutput{
		BatchID:   batchID,
		SessionID: sess.ID,
		Results:   make([]BatchResult, 0, len(input.Commands)),
	}

	failures := 0
	for i, line := range input.Commands {
		if failures >= maxFailures {
			for _, rest := range input.Commands[i:] {
				output.Results = append(output.Results, BatchResult{Command: rest, Status: StatusSkipped})
			}
			break
		}

		res := cmd.app.Dispatcher.Dispatch(ctx, sess, line)
		if res.Status == result.StatusExit {
			output.Results = append(output.Results, BatchResult{Command: line, Status: StatusSucceeded, Output: res.Output})
			for _, rest := range input.Commands[i+1:] {
				output.Results = append(output.Results, BatchResult{Command: rest, Status: StatusSkipped})
			}
			break
		}

		br := BatchResult{
			Command:    line,
			Output:     res.Output,
			Translated: res.Translated,
			Status:     StatusSucceeded,
		}
		if !res.Succeeded() {
			failures++
			br.Status = StatusFailed
			br.Error = res.ErrorMessage()
			br.Code = res.Code()
		}
		output.Results = append(output.Results, br)
	}

	output.CurrentDir = sess.Dir()
	return output
}

const (
	StatusSucceeded = "succeeded" // StatusSucceeded indicates the line ran successfully.
	StatusFailed    = "failed"    // StatusFailed indicates the line failed.
	StatusSkipped   = "skipped"   // StatusSkipped indicates the line was not attempted.
	maxFailures     = 3           // maxFailures is the number of failures before stopping batch processing.
)

// BatchInput is the JSON input schema for batch runs.
type BatchInput struct {
	Commands []string `json:"commands"`
}

// Validate checks the batch input for errors using criterio.
func (b BatchInput) Validate() error {
	if len(b.Commands) == 0 {
		return criterio.NewFieldErrors("commands", fmt.Errorf("array is empty"))
	}

	var errs criterio.FieldErrorsBuilder
	for i, line := range b.Commands {
		if strings.TrimSpace(line) == "" {
			errs = errs.Append(fmt.Sprintf("commands[%d]", i), fmt.Errorf("line is empty"))
		}
	}

	return errs.ToError()
}

// BatchResult is the output for a single line.
type BatchResult struct {
	Command    string      `json:"command"`
	Status     string      `json:"status"`
	Output     string      `json:"output,omitempty"`
	Translated string      `json:"translated,omitempty"`
	Error      string      `json:"error,omitempty"`
	Code       result.Code `json:"code,omitempty"`
}

// BatchOutput is the JSON output schema.
type BatchOutput struct {
	BatchID    string        `json:"batch_id"`
	SessionID  string        `json:"session_id"`
	CurrentDir string        `json:"current_dir"`
	Results    []BatchResult `json:"results"`
}

func countByStatus(results []BatchResult, status string) int {
	count := 0
	for _, r := range results {
		if r.Status == status {
			count++
		}
	}
	return count
}
