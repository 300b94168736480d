// Package config handles configuration loading and validation for pyterminal.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhinav4568482/pyterminal/internal/core/styles"
)

// Translator providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds the application configuration.
type Config struct {
	Shell      ShellConfig      `yaml:"shell"`
	Translator TranslatorConfig `yaml:"translator"`
	History    HistoryConfig    `yaml:"history"`
	Server     ServerConfig     `yaml:"server"`
	UI         UIConfig         `yaml:"ui"`
}

// ShellConfig controls commands forwarded to the host shell.
type ShellConfig struct {
	Timeout     time.Duration `yaml:"timeout"`       // wall-clock limit per command
	MaxOutputKB int           `yaml:"max_output_kb"` // cap for stdout and stderr each
}

// TranslatorConfig controls natural-language translation.
type TranslatorConfig struct {
	Provider    string        `yaml:"provider"`    // openai or gemini
	Model       string        `yaml:"model"`       // provider model name
	BaseURL     string        `yaml:"base_url"`    // API endpoint override
	APIKeyEnv   string        `yaml:"api_key_env"` // environment variable holding the credential
	MaxTokens   int           `yaml:"max_tokens"`
	Temperature float64       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
}

// HistoryConfig controls the per-session command ledger.
type HistoryConfig struct {
	DisplayLimit int `yaml:"display_limit"` // entries shown by the history command
	Retention    int `yaml:"retention"`     // entries kept per session, 0 = unlimited
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr      string `yaml:"addr"`
	MaxBodyKB int    `yaml:"max_body_kb"`
}

// UIConfig controls terminal presentation.
type UIConfig struct {
	Theme string `yaml:"theme"`
}

// providerDefaults holds the provider-dependent translator settings.
var providerDefaults = map[string]TranslatorConfig{
	ProviderOpenAI: {
		Model:     "gpt-3.5-turbo",
		BaseURL:   "https://api.openai.com/v1",
		APIKeyEnv: "OPENAI_API_KEY",
	},
	ProviderGemini: {
		Model:     "gemini-2.0-flash",
		APIKeyEnv: "GEMINI_API_KEY",
	},
}

// baseConfig returns defaults without provider-dependent translator fields, so
// a file that only switches provider picks up that provider's defaults.
func baseConfig() Config {
	return Config{
		Shell: ShellConfig{
			Timeout:     30 * time.Second,
			MaxOutputKB: 1024,
		},
		Translator: TranslatorConfig{
			Provider:    ProviderOpenAI,
			MaxTokens:   150,
			Temperature: 0.1,
			Timeout:     30 * time.Second,
		},
		History: HistoryConfig{
			DisplayLimit: 20,
		},
		Server: ServerConfig{
			Addr:      "127.0.0.1:5000",
			MaxBodyKB: 64,
		},
		UI: UIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	cfg := baseConfig()
	cfg.applyDefaults()
	return cfg
}

// DefaultConfigFor returns defaults with the translator set to provider.
func DefaultConfigFor(provider string) Config {
	cfg := baseConfig()
	cfg.Translator.Provider = provider
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := baseConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := baseConfig()

	if c.Shell.Timeout == 0 {
		c.Shell.Timeout = defaults.Shell.Timeout
	}
	if c.Shell.MaxOutputKB == 0 {
		c.Shell.MaxOutputKB = defaults.Shell.MaxOutputKB
	}

	if c.Translator.Provider == "" {
		c.Translator.Provider = defaults.Translator.Provider
	}
	if pd, ok := providerDefaults[c.Translator.Provider]; ok {
		if c.Translator.Model == "" {
			c.Translator.Model = pd.Model
		}
		if c.Translator.BaseURL == "" {
			c.Translator.BaseURL = pd.BaseURL
		}
		if c.Translator.APIKeyEnv == "" {
			c.Translator.APIKeyEnv = pd.APIKeyEnv
		}
	}
	if c.Translator.MaxTokens == 0 {
		c.Translator.MaxTokens = defaults.Translator.MaxTokens
	}
	if c.Translator.Timeout == 0 {
		c.Translator.Timeout = defaults.Translator.Timeout
	}

	if c.History.DisplayLimit == 0 {
		c.History.DisplayLimit = defaults.History.DisplayLimit
	}

	if c.Server.Addr == "" {
		c.Server.Addr = defaults.Server.Addr
	}
	if c.Server.MaxBodyKB == 0 {
		c.Server.MaxBodyKB = defaults.Server.MaxBodyKB
	}

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Shell.Timeout <= 0 {
		return fmt.Errorf("shell.timeout must be positive")
	}
	if c.Shell.MaxOutputKB < 1 {
		return fmt.Errorf("shell.max_output_kb must be at least 1")
	}

	if _, ok := providerDefaults[c.Translator.Provider]; !ok {
		return fmt.Errorf("translator.provider %q is not supported (use openai or gemini)", c.Translator.Provider)
	}
	if c.Translator.APIKeyEnv == "" {
		return fmt.Errorf("translator.api_key_env cannot be empty")
	}
	if c.Translator.MaxTokens < 1 {
		return fmt.Errorf("translator.max_tokens must be at least 1")
	}
	if c.Translator.Temperature < 0 || c.Translator.Temperature > 2 {
		return fmt.Errorf("translator.temperature must be between 0 and 2")
	}
	if c.Translator.Timeout <= 0 {
		return fmt.Errorf("translator.timeout must be positive")
	}

	if c.History.DisplayLimit < 1 {
		return fmt.Errorf("history.display_limit must be at least 1")
	}
	if c.History.Retention < 0 {
		return fmt.Errorf("history.retention cannot be negative")
	}

	if c.Server.MaxBodyKB < 1 {
		return fmt.Errorf("server.max_body_kb must be at least 1")
	}

	if _, ok := styles.GetPalette(c.UI.Theme); !ok {
		return fmt.Errorf("ui.theme %q is not a built-in theme", c.UI.Theme)
	}

	return nil
}

// MaxOutputBytes returns the per-stream output cap in bytes.
func (c *Config) MaxOutputBytes() int64 {
	return int64(c.Shell.MaxOutputKB) * 1024
}

// MaxBodyBytes returns the request body limit in bytes.
func (c *Config) MaxBodyBytes() int64 {
	return int64(c.Server.MaxBodyKB) * 1024
}
