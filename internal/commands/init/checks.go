package initcmd

import (
	"context"
	"os"
	"os/exec"
	"runtime"

	"github.com/abhinav4568482/pyterminal/internal/core/config"
)

// Status is the outcome of one check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	default:
		return "fail"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// CheckItem is one line of a check report.
type CheckItem struct {
	Label  string `json:"label"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Result groups the items of a check run.
type Result struct {
	Name  string      `json:"name"`
	Items []CheckItem `json:"items"`
}

// Summary counts items by status across results.
func Summary(results []Result) (passed, warned, failed int) {
	for _, r := range results {
		for _, item := range r.Items {
			switch item.Status {
			case StatusPass:
				passed++
			case StatusWarn:
				warned++
			case StatusFail:
				failed++
			}
		}
	}
	return passed, warned, failed
}

// InitCheck validates the init wizard results.
type InitCheck struct {
	configPath string
	getenv     func(string) string
}

// NewInitCheck creates a new init validation check.
func NewInitCheck(configPath string, getenv func(string) string) *InitCheck {
	return &InitCheck{configPath: configPath, getenv: getenv}
}

func (c *InitCheck) Name() string {
	return "Init Validation"
}

func (c *InitCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	result.Items = append(result.Items, c.checkConfigFile())

	cfg, err := config.Load(c.configPath)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "Config contents",
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	result.Items = append(result.Items, c.checkShell())
	result.Items = append(result.Items, c.checkCredential(cfg))

	return result
}

func (c *InitCheck) checkConfigFile() CheckItem {
	if _, err := os.Stat(c.configPath); err != nil {
		return CheckItem{
			Label:  "Config file",
			Status: StatusFail,
			Detail: c.configPath + " not found",
		}
	}
	return CheckItem{
		Label:  "Config file",
		Status: StatusPass,
		Detail: c.configPath,
	}
}

func (c *InitCheck) checkShell() CheckItem {
	shell := "sh"
	if runtime.GOOS == "windows" {
		shell = "cmd"
	}

	if path, err := exec.LookPath(shell); err == nil {
		return CheckItem{
			Label:  "Host shell",
			Status: StatusPass,
			Detail: path,
		}
	}
	return CheckItem{
		Label:  "Host shell",
		Status: StatusFail,
		Detail: shell + " not found - external commands will fail",
	}
}

func (c *InitCheck) checkCredential(cfg *config.Config) CheckItem {
	env := cfg.Translator.APIKeyEnv
	if c.getenv(env) != "" {
		return CheckItem{
			Label:  "Translator credential",
			Status: StatusPass,
			Detail: env + " is set",
		}
	}
	return CheckItem{
		Label:  "Translator credential",
		Status: StatusWarn,
		Detail: env + " not set - natural-language commands disabled",
	}
}
