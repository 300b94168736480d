package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the full-screen prompt on the given terminal streams.
func Run(ctx context.Context, opts Options, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(
		New(ctx, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run prompt: %w", err)
	}

	// The alternate screen is gone once Run returns; leave the farewell on
	// the main screen.
	if m, ok := final.(Model); ok && m.quitting {
		_, _ = fmt.Fprintln(out, m.transcript[len(m.transcript)-1])
	}
	return nil
}
