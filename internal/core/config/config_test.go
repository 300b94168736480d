package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Shell.Timeout)
	assert.Equal(t, 1024, cfg.Shell.MaxOutputKB)
	assert.Equal(t, ProviderOpenAI, cfg.Translator.Provider)
	assert.Equal(t, "gpt-3.5-turbo", cfg.Translator.Model)
	assert.Equal(t, "https://api.openai.com/v1", cfg.Translator.BaseURL)
	assert.Equal(t, "OPENAI_API_KEY", cfg.Translator.APIKeyEnv)
	assert.Equal(t, 150, cfg.Translator.MaxTokens)
	assert.InDelta(t, 0.1, cfg.Translator.Temperature, 1e-9)
	assert.Equal(t, 20, cfg.History.DisplayLimit)
	assert.Equal(t, 0, cfg.History.Retention)
	assert.Equal(t, "127.0.0.1:5000", cfg.Server.Addr)
	assert.Equal(t, int64(64*1024), cfg.MaxBodyBytes())
	assert.Equal(t, int64(1024*1024), cfg.MaxOutputBytes())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, `
shell:
  timeout: 5s
translator:
  model: gpt-4o-mini
  temperature: 0
history:
  retention: 100
server:
  addr: 127.0.0.1:8080
ui:
  theme: gruvbox
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Shell.Timeout)
	assert.Equal(t, 1024, cfg.Shell.MaxOutputKB, "unset keys keep defaults")
	assert.Equal(t, "gpt-4o-mini", cfg.Translator.Model)
	assert.Zero(t, cfg.Translator.Temperature)
	assert.Equal(t, 100, cfg.History.Retention)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, "gruvbox", cfg.UI.Theme)
}

func TestLoad_GeminiProviderDefaults(t *testing.T) {
	path := writeConfig(t, "translator:\n  provider: gemini\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.0-flash", cfg.Translator.Model)
	assert.Equal(t, "GEMINI_API_KEY", cfg.Translator.APIKeyEnv)
	assert.Empty(t, cfg.Translator.BaseURL, "gemini uses the SDK endpoint")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "shell: [", "parse config file"},
		{"bad duration", "shell:\n  timeout: soon\n", "parse config file"},
		{"unknown provider", "translator:\n  provider: llama\n", "translator.provider"},
		{"negative timeout", "shell:\n  timeout: -1s\n", "shell.timeout"},
		{"negative retention", "history:\n  retention: -1\n", "history.retention"},
		{"unknown theme", "ui:\n  theme: neon\n", "ui.theme"},
		{"temperature range", "translator:\n  temperature: 3\n", "translator.temperature"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Translator.Provider = ProviderGemini
	cfg.Translator.Model = "gemini-2.5-flash"
	cfg.Translator.APIKeyEnv = "GEMINI_API_KEY"
	cfg.Translator.BaseURL = ""
	cfg.Shell.Timeout = 45 * time.Second
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, *loaded)
}

func TestDefaultConfigFor(t *testing.T) {
	cfg := DefaultConfigFor(ProviderGemini)
	assert.Equal(t, "gemini-2.0-flash", cfg.Translator.Model)
	assert.Equal(t, "GEMINI_API_KEY", cfg.Translator.APIKeyEnv)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultConfig(), DefaultConfigFor(ProviderOpenAI))
}
