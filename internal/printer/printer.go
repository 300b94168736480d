// Package printer writes styled, human-facing CLI output.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/abhinav4568482/pyterminal/internal/core/styles"
)

type ctxKey struct{}

// Printer prefixes messages with a status glyph and colours them with the
// active theme. Methods are safe for concurrent use.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer
}

// New creates a printer writing normal output to out and errors to errOut.
func New(out, errOut io.Writer) *Printer {
	return &Printer{out: out, err: errOut}
}

// NewContext returns a child context carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one bound to stdout and stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout, os.Stderr)
}

func (p *Printer) line(w io.Writer, style lipgloss.Style, glyph, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if glyph != "" {
		msg = style.Render(glyph) + " " + msg
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintln(w, msg)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	p.line(p.out, lipgloss.NewStyle(), "", format, args...)
}

// Successf writes a success line.
func (p *Printer) Successf(format string, args ...any) {
	p.line(p.out, styles.SuccessStyle, "✓", format, args...)
}

// Infof writes an informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(p.out, styles.InfoStyle, "•", format, args...)
}

// Warnf writes a warning line.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(p.out, styles.WarningStyle, "!", format, args...)
}

// Errorf writes an error line to the error stream.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(p.err, styles.ErrorStyle, "✗", format, args...)
}

// Section writes a bold heading.
func (p *Printer) Section(title string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintln(p.out, lipgloss.NewStyle().Bold(true).Render(title))
}

// CheckItem, WarnItem and FailItem write indented check results.
func (p *Printer) CheckItem(label, detail string) { p.item(styles.SuccessStyle, "✓", label, detail) }

func (p *Printer) WarnItem(label, detail string) { p.item(styles.WarningStyle, "!", label, detail) }

func (p *Printer) FailItem(label, detail string) { p.item(styles.ErrorStyle, "✗", label, detail) }

func (p *Printer) item(style lipgloss.Style, glyph, label, detail string) {
	msg := "  " + style.Render(glyph) + " " + label
	if detail != "" {
		msg += styles.MutedStyle.Render(" (" + detail + ")")
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintln(p.out, msg)
}
