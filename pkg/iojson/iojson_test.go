package iojson

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Commands []string `json:"commands"`
}

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer

	require.NoError(t, WriteWith(&out, &errOut, payload{Commands: []string{"pwd"}}))

	var got payload
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, []string{"pwd"}, got.Commands)
	assert.Empty(t, errOut.String())
}

func TestWriteWith_UnmarshalableValue(t *testing.T) {
	var out, errOut bytes.Buffer

	require.NoError(t, WriteWith(&out, &errOut, map[string]any{"fn": func() {}}))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "json_error")
}

func TestMarshalError(t *testing.T) {
	got := MarshalError(`bad "input"`, map[string]any{"line": 3})

	var e Error
	require.NoError(t, json.Unmarshal([]byte(got), &e))
	assert.Equal(t, `bad "input"`, e.Message)
	assert.InDelta(t, 3, e.Data["line"], 0)
}

func TestFileReader_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"commands":["ls","pwd"]}`), 0o644))

	fr := &FileReader[payload]{fileFlagValue: path}
	got, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"ls", "pwd"}, got.Commands)
}

func TestFileReader_FromStdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stdin.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"commands":["cpu"]}`), 0o644))
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	fr := &FileReader[payload]{Stdin: f}
	got, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, []string{"cpu"}, got.Commands)
}

func TestFileReader_Errors(t *testing.T) {
	dir := t.TempDir()
	unknown := filepath.Join(dir, "unknown.json")
	require.NoError(t, os.WriteFile(unknown, []byte(`{"lines":["ls"]}`), 0o644))
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"commands":`), 0o644))

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.json"), "open file"},
		{"unknown field", unknown, "decode JSON"},
		{"truncated", broken, "decode JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fr := &FileReader[payload]{fileFlagValue: tt.path}
			_, err := fr.Read()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWriteError(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, WriteError(&buf, "invalid input", nil))

	var e Error
	require.NoError(t, json.Unmarshal(buf.Bytes(), &e))
	assert.Equal(t, "invalid input", e.Message)
	assert.NotContains(t, buf.String(), `"data"`)
}
