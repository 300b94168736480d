package initcmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/abhinav4568482/pyterminal/internal/core/config"
	"github.com/abhinav4568482/pyterminal/internal/core/styles"
	"github.com/abhinav4568482/pyterminal/internal/printer"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool   // skip prompts, use defaults
	Force      bool   // overwrite existing config
	Provider   string // preselected translator provider ("" = prompt, default openai)
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts   WizardOptions
	getenv func(string) string
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts, getenv: os.Getenv}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	// Check for existing config
	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	provider := w.opts.Provider
	if provider == "" {
		provider = config.ProviderOpenAI
	}
	cfg := config.DefaultConfigFor(provider)

	if !w.opts.Yes {
		var err error
		cfg, err = w.promptUser(provider)
		if err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	// Backup existing config if needed
	if ConfigExists(w.opts.ConfigPath) {
		backupPath, err := BackupConfig(w.opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("backup config: %w", err)
		}
		if backupPath != "" {
			p.Successf("Backed up config to: %s", backupPath)
		}
	}

	if err := cfg.Save(w.opts.ConfigPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	// Run validation checks
	p.Printf("")
	result := NewInitCheck(w.opts.ConfigPath, w.getenv).Run(ctx)

	p.Section(result.Name)
	for _, item := range result.Items {
		switch item.Status {
		case StatusPass:
			p.CheckItem(item.Label, item.Detail)
		case StatusWarn:
			p.WarnItem(item.Label, item.Detail)
		case StatusFail:
			p.FailItem(item.Label, item.Detail)
		}
	}

	w.printNextSteps(p, cfg)

	return nil
}

func (w *Wizard) promptUser(provider string) (config.Config, error) {
	if w.opts.Provider == "" {
		err := huh.NewSelect[string]().
			Title("Translator provider").
			Description("Used to turn natural-language requests into shell commands").
			Options(
				huh.NewOption("OpenAI (or compatible)", config.ProviderOpenAI),
				huh.NewOption("Gemini", config.ProviderGemini),
			).
			Value(&provider).
			Run()
		if err != nil {
			return config.Config{}, err
		}
	}

	cfg := config.DefaultConfigFor(provider)
	timeout := cfg.Shell.Timeout.String()

	themeOpts := make([]huh.Option[string], 0, len(styles.ThemeNames()))
	for _, name := range styles.ThemeNames() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Model").
				Value(&cfg.Translator.Model),
			huh.NewInput().
				Title("API key environment variable").
				Description("The key itself is never written to the config file").
				Value(&cfg.Translator.APIKeyEnv),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Shell command timeout").
				Value(&timeout).
				Validate(func(s string) error {
					d, err := time.ParseDuration(s)
					if err != nil {
						return err
					}
					if d <= 0 {
						return fmt.Errorf("timeout must be positive")
					}
					return nil
				}),
			huh.NewInput().
				Title("HTTP listen address").
				Description("Used by 'pyterminal serve'").
				Value(&cfg.Server.Addr),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOpts...).
				Value(&cfg.UI.Theme),
		),
	)
	if err := form.Run(); err != nil {
		return config.Config{}, err
	}

	d, err := time.ParseDuration(timeout)
	if err != nil {
		return config.Config{}, fmt.Errorf("parse timeout: %w", err)
	}
	cfg.Shell.Timeout = d

	return cfg, nil
}

func (w *Wizard) printNextSteps(p *printer.Printer, cfg config.Config) {
	p.Printf("")
	p.Section("Next Steps")

	step := 1
	if w.getenv(cfg.Translator.APIKeyEnv) == "" {
		p.Printf("  %d. Export %s to enable natural-language commands", step, cfg.Translator.APIKeyEnv)
		step++
	}

	p.Printf("  %d. Run 'pyterminal' to start the prompt", step)
}
