package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhinav4568482/pyterminal/internal/core/result"
	"github.com/abhinav4568482/pyterminal/pkg/tuitest"
)

func TestRenderResult(t *testing.T) {
	failed := result.Fail(result.CodeCommandFailed, "boom")
	failed.Output = "partial\n"

	translated := result.OK("a\nb\n")
	translated.Translated = "ls"

	tests := []struct {
		name string
		res  result.Result
		want string
	}{
		{"output", result.OK("hello\n"), "hello"},
		{"empty output", result.OK(""), ""},
		{"warning", result.OKWithWarning("done", "careful\n"), "done\nWarning: careful"},
		{"error with output", failed, "Error: boom\nOutput: partial"},
		{"clear", result.ClearScreen(), ""},
		{"exit", result.Exit(), "Goodbye!"},
		{"translated", translated, "AI Suggestion: ls\n\na\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tuitest.StripANSI(RenderResult(tt.res)))
		})
	}
}

func TestBanner(t *testing.T) {
	out := tuitest.StripANSI(Banner(60))
	assert.Contains(t, out, "PyTerminal")
	assert.Contains(t, out, "designed by Abhinav")
	assert.Contains(t, out, "help")
}
