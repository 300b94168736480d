// Package tui implements the interactive prompt.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abhinav4568482/pyterminal/internal/core/result"
	"github.com/abhinav4568482/pyterminal/internal/core/session"
	"github.com/abhinav4568482/pyterminal/internal/core/styles"
	"github.com/abhinav4568482/pyterminal/internal/translate"
)

const interruptHint = "Use 'exit' or 'quit' to close the terminal"

// Dispatcher runs one line for a session.
type Dispatcher interface {
	Dispatch(ctx context.Context, sess *session.Session, line string) result.Result
}

// dispatchedMsg carries a finished dispatch back into Update.
type dispatchedMsg struct {
	res result.Result
}

// Model is the bubbletea model for the prompt.
type Model struct {
	ctx        context.Context
	dispatcher Dispatcher
	session    *session.Session
	completer  *Completer
	aiStatus   string

	input    textinput.Model
	viewport viewport.Model
	recall   recall

	transcript []string
	width      int
	height     int
	ready      bool
	busy       bool
	quitting   bool
}

// Options configures a Model.
type Options struct {
	Dispatcher Dispatcher
	Session    *session.Session
	Completer  *Completer
	Translator translate.Translator
}

// New creates the prompt model.
func New(ctx context.Context, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = Prompt(opts.Session.Dir())
	ti.Focus()

	completer := opts.Completer
	if completer == nil {
		completer = NewCompleter(nil, "")
	}

	return Model{
		ctx:        ctx,
		dispatcher: opts.Dispatcher,
		session:    opts.Session,
		completer:  completer,
		aiStatus:   translate.Status(opts.Translator),
		input:      ti,
		viewport:   viewport.New(80, 20),
		transcript: []string{Banner(80)},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-2, 1)
		m.input.Width = max(msg.Width-len(PromptDir(m.session.Dir()))-6, 10)
		if !m.ready {
			m.transcript[0] = Banner(msg.Width)
			m.ready = true
		}
		m.refresh()
		return m, nil

	case dispatchedMsg:
		return m.handleResult(msg.res)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.append("Goodbye!")
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Interrupt):
		m.input.Reset()
		m.append(styles.MutedStyle.Render(interruptHint))
		return m, nil

	case key.Matches(msg, keys.PageUp), key.Matches(msg, keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Submit):
		return m.submit()

	case key.Matches(msg, keys.Prev):
		if line, ok := m.recall.prev(m.input.Value()); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, keys.Next):
		if line, ok := m.recall.next(); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, keys.Complete):
		line := m.input.Value()
		candidates := m.completer.Complete(line, m.session.Dir())
		if completed := Apply(line, candidates); completed != line {
			m.input.SetValue(completed)
			m.input.CursorEnd()
		} else if len(candidates) > 1 {
			m.append(styles.MutedStyle.Render(strings.Join(candidates, "  ")))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.append(m.input.Prompt + styles.CommandStyle.Render(line))

	if strings.TrimSpace(line) == "" {
		return m, nil
	}
	m.recall.add(line)
	m.busy = true

	ctx, d, sess := m.ctx, m.dispatcher, m.session
	return m, func() tea.Msg {
		return dispatchedMsg{res: d.Dispatch(ctx, sess, line)}
	}
}

func (m Model) handleResult(res result.Result) (tea.Model, tea.Cmd) {
	m.busy = false

	switch res.Status {
	case result.StatusClearScreen:
		m.transcript = []string{Banner(m.width)}
		m.refresh()
		return m, tea.ClearScreen
	case result.StatusExit:
		m.append(RenderResult(res))
		m.quitting = true
		return m, tea.Quit
	}

	if out := RenderResult(res); out != "" {
		m.append(out)
	}
	m.input.Prompt = Prompt(m.session.Dir())
	return m, nil
}

func (m *Model) append(block string) {
	m.transcript = append(m.transcript, block)
	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	input := m.input.View()
	if m.busy {
		input = styles.BusyStyle.Render("running...")
	}

	status := styles.StatusBarStyle.Render("AI: " + m.aiStatus + "  |  tab complete  |  ctrl+d quit")
	return m.viewport.View() + "\n" + input + "\n" + status
}

// Transcript returns the rendered blocks shown so far.
func (m Model) Transcript() []string {
	return m.transcript
}
