package tui

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/abhinav4568482/pyterminal/internal/core/result"
	"github.com/abhinav4568482/pyterminal/internal/core/session"
)

// RunLines reads one command per line from in until EOF, an exit command or
// ctx is done. It is the non-interactive counterpart of the prompt.
func RunLines(ctx context.Context, d Dispatcher, sess *session.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Text()
		if line == "" {
			continue
		}

		res := d.Dispatch(ctx, sess, line)
		if rendered := RenderResult(res); rendered != "" {
			if _, err := fmt.Fprintln(out, rendered); err != nil {
				return err
			}
		}
		if res.Status == result.StatusExit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
