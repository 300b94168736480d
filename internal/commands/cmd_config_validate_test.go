package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhinav4568482/pyterminal/internal/core/config"
	"github.com/abhinav4568482/pyterminal/internal/printer"
)

func TestConfigValidate_Report(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	tests := []struct {
		name      string
		mutate    func(*config.Config)
		wantValid bool
		wantField string
	}{
		{
			name:      "defaults",
			mutate:    func(*config.Config) {},
			wantValid: true,
		},
		{
			name:      "bad base url",
			mutate:    func(c *config.Config) { c.Translator.BaseURL = "ftp://x" },
			wantField: "translator.base_url",
		},
		{
			name:      "structural error",
			mutate:    func(c *config.Config) { c.History.DisplayLimit = 0 },
			wantField: "config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.mutate(&cfg)

			cmd := NewConfigValidateCmd(&Flags{
				Config:     &cfg,
				ConfigPath: filepath.Join(t.TempDir(), "config.yaml"),
			})
			report := cmd.report()

			assert.Equal(t, tt.wantValid, report.Valid)
			if tt.wantField != "" {
				require.NotEmpty(t, report.Errors)
				assert.Equal(t, tt.wantField, report.Errors[0].Field)
			}
		})
	}
}

func TestConfigValidate_WarnsWithoutCredential(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg := config.DefaultConfig()
	cmd := NewConfigValidateCmd(&Flags{Config: &cfg})
	report := cmd.report()

	assert.True(t, report.Valid)
	require.Len(t, report.Warnings, 1)

	var out bytes.Buffer
	cmd.outputText(printer.New(&out, &out), report)
	text := ansi.Strip(out.String())
	assert.Contains(t, text, "Translator: credential not set")
	assert.Contains(t, text, "Item: OPENAI_API_KEY")
	assert.Contains(t, text, "Configuration is valid")
}
