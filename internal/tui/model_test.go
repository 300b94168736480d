package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhinav4568482/pyterminal/internal/core/result"
	"github.com/abhinav4568482/pyterminal/internal/core/session"
	"github.com/abhinav4568482/pyterminal/internal/dispatch"
	"github.com/abhinav4568482/pyterminal/internal/translate"
	"github.com/abhinav4568482/pyterminal/pkg/executil"
	"github.com/abhinav4568482/pyterminal/pkg/tuitest"
)

func newTestModel(t *testing.T, tr translate.Translator) (Model, *session.Session) {
	t.Helper()

	sess := session.New("test", t.TempDir(), time.Now())
	d := dispatch.New(dispatch.Options{
		Translator: tr,
		Shell:      &executil.RecordingRunner{Default: result.OK("from shell\n")},
	})

	m := New(context.Background(), Options{
		Dispatcher: d,
		Session:    sess,
		Completer:  NewCompleter(d.Registry().Names(), ""),
		Translator: tr,
	})
	m, _ = update(t, m, tuitest.WindowSize(120, 30))
	return m, sess
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// submit types line, presses enter and feeds the dispatch result back.
func submit(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m, _ = update(t, m, tuitest.Type(line))
	m, cmd := update(t, m, tuitest.KeyEnter())
	require.NotNil(t, cmd, "non-empty line should dispatch")
	require.True(t, m.busy)
	return update(t, m, cmd())
}

func transcript(m Model) string {
	return tuitest.StripANSI(strings.Join(m.Transcript(), "\n"))
}

func TestModel_BuiltinUpdatesPrompt(t *testing.T) {
	m, sess := newTestModel(t, nil)

	m, _ = submit(t, m, "mkdir demo")
	m, _ = submit(t, m, "cd demo")

	out := transcript(m)
	assert.Contains(t, out, "Created directory: demo")
	assert.Contains(t, out, "Changed to: "+sess.Dir())
	assert.Contains(t, tuitest.StripANSI(m.input.Prompt), "demo]")
	assert.False(t, m.busy)
}

func TestModel_ExternalOutput(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = submit(t, m, "echo hi")
	assert.Contains(t, transcript(m), "from shell")
}

func TestModel_ErrorRendering(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = submit(t, m, "cat missing.txt")
	assert.Contains(t, transcript(m), "Error: cat: no such file: 'missing.txt'")
}

func TestModel_ExitQuits(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, cmd := submit(t, m, "exit")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Contains(t, transcript(m), "Goodbye!")
}

func TestModel_CtrlDQuits(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, cmd := update(t, m, tuitest.Key(tea.KeyCtrlD))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
}

func TestModel_CtrlCShowsHint(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = update(t, m, tuitest.Type("half typed"))
	m, cmd := update(t, m, tuitest.Key(tea.KeyCtrlC))

	assert.Nil(t, cmd)
	assert.Empty(t, m.input.Value())
	assert.Contains(t, transcript(m), interruptHint)
	assert.False(t, m.quitting)
}

func TestModel_ClearResetsTranscript(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = submit(t, m, "pwd")
	require.Greater(t, len(m.Transcript()), 1)

	m, _ = submit(t, m, "clear")
	assert.Len(t, m.Transcript(), 1, "only the banner survives a clear")
	assert.Contains(t, transcript(m), "PyTerminal")
}

func TestModel_EmptyLineDoesNotDispatch(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = update(t, m, tuitest.Type("   "))
	m, cmd := update(t, m, tuitest.KeyEnter())
	assert.Nil(t, cmd)
	assert.False(t, m.busy)
}

func TestModel_BusyIgnoresEnter(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = update(t, m, tuitest.Type("pwd"))
	m, cmd := update(t, m, tuitest.KeyEnter())
	require.NotNil(t, cmd)

	m, _ = update(t, m, tuitest.Type("ls"))
	_, cmd = update(t, m, tuitest.KeyEnter())
	assert.Nil(t, cmd, "no second dispatch while one is running")
}

func TestModel_Recall(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = submit(t, m, "pwd")
	m, _ = submit(t, m, "ls")
	m, _ = update(t, m, tuitest.Type("draft"))

	steps := []struct {
		msg  tea.Msg
		want string
	}{
		{tuitest.KeyUp(), "ls"},
		{tuitest.KeyUp(), "pwd"},
		{tuitest.KeyUp(), "pwd"},
		{tuitest.KeyDown(), "ls"},
		{tuitest.KeyDown(), "draft"},
	}
	for _, s := range steps {
		m, _ = update(t, m, s.msg)
		assert.Equal(t, s.want, m.input.Value())
	}
}

func TestModel_TabCompletion(t *testing.T) {
	m, sess := newTestModel(t, nil)
	require.NoError(t, os.Mkdir(filepath.Join(sess.Dir(), "documents"), 0o755))

	m, _ = update(t, m, tuitest.Type("cd doc"))
	m, _ = update(t, m, tuitest.KeyTab())
	assert.Equal(t, "cd documents/", m.input.Value())

	m.input.SetValue("tell")
	m, _ = update(t, m, tuitest.KeyTab())
	assert.Equal(t, "tellmeabout_developer ", m.input.Value())
}

func TestModel_TabListsAmbiguousCandidates(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m, _ = update(t, m, tuitest.Type("c"))
	m, _ = update(t, m, tuitest.KeyTab())

	assert.Equal(t, "c", m.input.Value())
	assert.Contains(t, transcript(m), "cat  cd  clear  cpu")
}

func TestModel_TranslatedSuggestion(t *testing.T) {
	tr := translate.Func(func(context.Context, string) (string, error) { return "pwd", nil })
	m, sess := newTestModel(t, tr)

	m, _ = submit(t, m, "show me where I am")

	out := transcript(m)
	assert.Contains(t, out, "AI Suggestion: pwd")
	assert.Contains(t, out, sess.Dir())
	assert.Contains(t, tuitest.StripANSI(m.View()), "Enabled (func)")
}
