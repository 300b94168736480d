package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/abhinav4568482/pyterminal/internal/builtins"
	"github.com/abhinav4568482/pyterminal/internal/core/config"
	"github.com/abhinav4568482/pyterminal/internal/core/history"
	"github.com/abhinav4568482/pyterminal/internal/core/session"
	"github.com/abhinav4568482/pyterminal/internal/dispatch"
	"github.com/abhinav4568482/pyterminal/internal/translate"
	"github.com/abhinav4568482/pyterminal/pkg/executil"
)

// App holds the interpreter shared by every command. It is populated in the
// root Before hook; commands keep a pointer to it.
type App struct {
	Config     *config.Config
	Dispatcher *dispatch.Dispatcher
	Sessions   *session.Manager
	HomeDir    string
}

// NewApp builds the dispatcher and its collaborators from cfg. New sessions
// start in startDir.
func NewApp(ctx context.Context, cfg *config.Config, startDir string, getenv func(string) string) (*App, error) {
	tr, err := translate.New(ctx, translate.Options{
		Provider:    cfg.Translator.Provider,
		Model:       cfg.Translator.Model,
		BaseURL:     cfg.Translator.BaseURL,
		APIKeyEnv:   cfg.Translator.APIKeyEnv,
		MaxTokens:   cfg.Translator.MaxTokens,
		Temperature: cfg.Translator.Temperature,
		Timeout:     cfg.Translator.Timeout,
	}, getenv)
	if err != nil {
		return nil, fmt.Errorf("create translator: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	d := dispatch.New(dispatch.Options{
		Registry:     builtins.NewRegistry(nil),
		Translator:   tr,
		Shell:        executil.NewShellRunner(cfg.Shell.Timeout, cfg.MaxOutputBytes()),
		History:      history.NewMemoryStore(cfg.History.Retention),
		HomeDir:      home,
		DisplayLimit: cfg.History.DisplayLimit,
	})

	return &App{
		Config:     cfg,
		Dispatcher: d,
		Sessions:   session.NewManager(startDir),
		HomeDir:    home,
	}, nil
}
