package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a Config with all required fields set for testing.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	return &cfg
}

func TestValidateDeep_ValidConfig(t *testing.T) {
	cfg := validConfig(t)

	err := cfg.ValidateDeep("")
	assert.NoError(t, err, "expected valid config")
}

func TestValidateDeep_BasicValidationFirst(t *testing.T) {
	cfg := validConfig(t)
	cfg.History.DisplayLimit = 0

	err := cfg.ValidateDeep("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history.display_limit")
}

func TestValidateDeep_InvalidBaseURL(t *testing.T) {
	cfg := validConfig(t)
	cfg.Translator.BaseURL = "ftp://example.com"

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "translator.base_url", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "scheme")
}

func TestValidateDeep_InvalidServerAddr(t *testing.T) {
	cfg := validConfig(t)
	cfg.Server.Addr = "localhost"

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 1)
	assert.Equal(t, "server.addr", fieldErrs[0].Field)
}

func TestValidateDeep_MultipleErrors(t *testing.T) {
	cfg := validConfig(t)
	cfg.Translator.BaseURL = "not a url"
	cfg.Server.Addr = "nope"

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
}

func TestValidateDeep_ConfigFileIsDirectory(t *testing.T) {
	cfg := validConfig(t)
	dir := t.TempDir()

	err := cfg.ValidateDeep(dir)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
}

func TestValidateDeep_MissingConfigFileIsFine(t *testing.T) {
	cfg := validConfig(t)

	assert.NoError(t, cfg.ValidateDeep(filepath.Join(t.TempDir(), "none.yaml")))
}

func TestValidateDeep_ExistingConfigFile(t *testing.T) {
	cfg := validConfig(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))

	assert.NoError(t, cfg.ValidateDeep(path))
}

func TestWarnings(t *testing.T) {
	env := func(vals map[string]string) func(string) string {
		return func(k string) string { return vals[k] }
	}

	t.Run("clean", func(t *testing.T) {
		cfg := validConfig(t)
		assert.Empty(t, cfg.Warnings(env(map[string]string{"OPENAI_API_KEY": "sk"})))
	})

	t.Run("missing credential", func(t *testing.T) {
		cfg := validConfig(t)
		warnings := cfg.Warnings(env(nil))
		require.Len(t, warnings, 1)
		assert.Equal(t, "Translator", warnings[0].Category)
		assert.Equal(t, "OPENAI_API_KEY", warnings[0].Item)
	})

	t.Run("public listen address", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Server.Addr = "0.0.0.0:5000"
		warnings := cfg.Warnings(env(map[string]string{"OPENAI_API_KEY": "sk"}))
		require.Len(t, warnings, 1)
		assert.Equal(t, "Server", warnings[0].Category)
	})

	t.Run("localhost is loopback", func(t *testing.T) {
		cfg := validConfig(t)
		cfg.Server.Addr = "localhost:5000"
		assert.Empty(t, cfg.Warnings(env(map[string]string{"OPENAI_API_KEY": "sk"})))
	})
}
