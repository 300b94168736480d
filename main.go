package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/abhinav4568482/pyterminal/internal/commands"
	"github.com/abhinav4568482/pyterminal/internal/core/config"
	"github.com/abhinav4568482/pyterminal/internal/core/styles"
	"github.com/abhinav4568482/pyterminal/internal/printer"
	"github.com/abhinav4568482/pyterminal/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		app       = &commands.App{}
	)

	flags := &commands.Flags{}

	root := &cli.Command{
		Name:      "pyterminal",
		Usage:     "A command interpreter with natural-language commands",
		UsageText: "pyterminal [global options] command [command options]",
		Description: `pyterminal reads a line, runs it as a builtin (ls, cd, cat, cpu, ...), turns
it into a shell command with a language model when it reads like a request,
or hands it to the host shell.

Run 'pyterminal' with no arguments to open the interactive prompt.
Set OPENAI_API_KEY (or GEMINI_API_KEY) to enable natural-language commands.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("PYTERMINAL_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("PYTERMINAL_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("PYTERMINAL_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			ctx = printer.NewContext(ctx, printer.New(c.Root().Writer, c.Root().ErrWriter))

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.UI.Theme)
			styles.SetTheme(palette)

			cwd, err := os.Getwd()
			if err != nil {
				return ctx, fmt.Errorf("resolve working directory: %w", err)
			}

			built, err := commands.NewApp(ctx, cfg, cwd, os.Getenv)
			if err != nil {
				return ctx, err
			}

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*app = *built

			log.Debug().
				Str("config", flags.ConfigPath).
				Str("translator", cfg.Translator.Provider).
				Msg("pyterminal started")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Close log file
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	replCmd := commands.NewReplCmd(flags, app)

	root = replCmd.Register(root)
	root = commands.NewExecCmd(flags, app).Register(root)
	root = commands.NewBatchCmd(flags, app).Register(root)
	root = commands.NewServeCmd(flags, app).Register(root)
	root = commands.NewInitCmd(flags).Register(root)
	root = commands.NewConfigValidateCmd(flags).Register(root)
	root = commands.NewDoctorCmd(flags).Register(root)

	// Start the prompt when no subcommand is provided
	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'pyterminal --help' for usage", c.Args().First())
		}
		return replCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := root.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
