package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleter_Complete(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "src", "main"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "main.go"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "weird[1].txt"), nil, 0o644))

	c := NewCompleter([]string{"ls", "cat", "cd", "mkdir"}, dir)

	tests := []struct {
		name string
		line string
		want []string
	}{
		{"empty line lists commands", "", []string{"cat", "cd", "exit", "ls", "mkdir", "q", "quit"}},
		{"command prefix", "c", []string{"cat", "cd"}},
		{"command prefix is case-insensitive", "MK", []string{"mkdir"}},
		{"argument matches files", "cat no", []string{"notes.md", "notes.txt"}},
		{"directories get a slash", "cd s", []string{"src/"}},
		{"nested path", "cat src/ma", []string{"src/main.go", "src/main/"}},
		{"hidden files need a dot", "cat .h", []string{".hidden"}},
		{"dot prefix shows hidden files", "cat .", []string{".hidden"}},
		{"glob metacharacters are literal", "cat weird[", []string{"weird[1].txt"}},
		{"absolute path", "ls " + dir + "/no", []string{dir + "/notes.md", dir + "/notes.txt"}},
		{"home expansion", "ls ~/sr", []string{"~/src/"}},
		{"no match", "cat zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Complete(tt.line, dir)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompleter_SkipsHiddenWithoutDot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "env.go"), nil, 0o644))

	c := NewCompleter(nil, "")
	assert.Equal(t, []string{"env.go"}, c.Complete("cat ", dir))
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		candidates []string
		want       string
	}{
		{"no candidates", "cat x", nil, "cat x"},
		{"single file adds space", "cat no", []string{"notes.txt"}, "cat notes.txt "},
		{"single dir keeps slash", "cd s", []string{"src/"}, "cd src/"},
		{"common prefix", "cat n", []string{"notes.md", "notes.txt"}, "cat notes."},
		{"no progress", "c", []string{"cat", "cd"}, "c"},
		{"command word", "pw", []string{"pwd"}, "pwd "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.line, tt.candidates))
		})
	}
}
