package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"runtime"

	"github.com/hay-kot/criterio"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration including
// file accessibility, the host shell and address syntax. The configPath argument
// specifies the config file location to validate (empty string skips config file check).
// This calls Validate() first for basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateTranslator(),
		c.validateServer(),
	)
}

// Warnings returns non-fatal configuration issues. getenv reads the process
// environment; pass os.Getenv outside tests.
func (c *Config) Warnings(getenv func(string) string) []ValidationWarning {
	var warnings []ValidationWarning

	if getenv(c.Translator.APIKeyEnv) == "" {
		warnings = append(warnings, ValidationWarning{
			Category: "Translator",
			Item:     c.Translator.APIKeyEnv,
			Message:  "credential not set; natural-language commands fall through to the shell",
		})
	}

	if host, _, err := net.SplitHostPort(c.Server.Addr); err == nil && !isLoopback(host) {
		warnings = append(warnings, ValidationWarning{
			Category: "Server",
			Item:     c.Server.Addr,
			Message:  "listening beyond loopback lets anyone who can connect run shell commands",
		})
	}

	return warnings
}

// validateFileAccess checks the config file and the host shell.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("shell", hostShell(), executableExists),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func (c *Config) validateTranslator() error {
	if c.Translator.BaseURL == "" {
		return nil
	}
	return criterio.Run("translator.base_url", c.Translator.BaseURL, isHTTPURL)
}

func (c *Config) validateServer() error {
	return criterio.Run("server.addr", c.Server.Addr, isListenAddr)
}

func hostShell() string {
	if runtime.GOOS == "windows" {
		return "cmd"
	}
	return "sh"
}

// executableExists validates that the path resolves to an executable.
func executableExists(path string) error {
	if _, err := exec.LookPath(path); err != nil {
		return fmt.Errorf("executable not found: %s", path)
	}
	return nil
}

func isHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}

func isListenAddr(addr string) error {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return fmt.Errorf("invalid listen address: %w", err)
	}
	return nil
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
