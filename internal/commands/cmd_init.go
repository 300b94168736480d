package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	initcmd "github.com/abhinav4568482/pyterminal/internal/commands/init"
	"github.com/abhinav4568482/pyterminal/internal/core/config"
)

type InitCmd struct {
	flags    *Flags
	yes      bool
	force    bool
	provider string
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Initialize pyterminal configuration with an interactive wizard",
		UsageText: "pyterminal init [options]",
		Description: `Sets up pyterminal for first-time use with an interactive wizard.

The wizard writes ~/.config/pyterminal/config.yaml with the translator
provider, model, shell timeout, listen address and theme, then checks that
the host shell and translator credential are available.

Use --yes to accept all defaults without prompts.
Use --force to overwrite existing configuration.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
			&cli.StringFlag{
				Name:        "provider",
				Usage:       "translator provider (openai, gemini)",
				Destination: &cmd.provider,
				Validator: func(s string) error {
					return config.DefaultConfigFor(s).Validate()
				},
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(ctx context.Context, _ *cli.Command) error {
	wizard := initcmd.NewWizard(initcmd.WizardOptions{
		ConfigPath: cmd.flags.ConfigPath,
		Yes:        cmd.yes,
		Force:      cmd.force,
		Provider:   cmd.provider,
	})
	return wizard.Run(ctx)
}
