package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/abhinav4568482/pyterminal/internal/builtins"
	initcmd "github.com/abhinav4568482/pyterminal/internal/commands/init"
	"github.com/abhinav4568482/pyterminal/internal/core/styles"
	"github.com/abhinav4568482/pyterminal/internal/printer"
	"github.com/abhinav4568482/pyterminal/pkg/iojson"
)

type DoctorCmd struct {
	flags  *Flags
	stats  builtins.SystemStats
	format string
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags, stats: builtins.HostStats{}}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Run health checks on your pyterminal setup",
		UsageText:   "pyterminal doctor [options]",
		Description: "Runs diagnostic checks on configuration, the host shell, the translator credential and system metrics.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	results := cmd.checks(ctx)
	_, _, failed := initcmd.Summary(results)

	if cmd.format == "json" {
		if err := cmd.outputJSON(c, results); err != nil {
			return err
		}
	} else {
		cmd.outputText(printer.Ctx(ctx), results)
	}

	if failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *DoctorCmd) checks(ctx context.Context) []initcmd.Result {
	return []initcmd.Result{
		initcmd.NewInitCheck(cmd.flags.ConfigPath, os.Getenv).Run(ctx),
		cmd.systemCheck(ctx),
	}
}

// systemCheck confirms the metrics builtins can read the host.
func (cmd *DoctorCmd) systemCheck(ctx context.Context) initcmd.Result {
	result := initcmd.Result{Name: "System Metrics"}

	if mem, err := cmd.stats.Memory(ctx); err != nil {
		result.Items = append(result.Items, initcmd.CheckItem{Label: "Memory", Status: initcmd.StatusWarn, Detail: err.Error()})
	} else {
		result.Items = append(result.Items, initcmd.CheckItem{Label: "Memory", Status: initcmd.StatusPass, Detail: fmt.Sprintf("%.1f%% used", mem.UsedPercent)})
	}

	if _, total, err := cmd.stats.Processes(ctx); err != nil {
		result.Items = append(result.Items, initcmd.CheckItem{Label: "Processes", Status: initcmd.StatusWarn, Detail: err.Error()})
	} else {
		result.Items = append(result.Items, initcmd.CheckItem{Label: "Processes", Status: initcmd.StatusPass, Detail: fmt.Sprintf("%d running", total)})
	}

	return result
}

type summaryJSON struct {
	Passed int `json:"passed"`
	Warned int `json:"warned"`
	Failed int `json:"failed"`
}

func (cmd *DoctorCmd) outputJSON(c *cli.Command, results []initcmd.Result) error {
	passed, warned, failed := initcmd.Summary(results)

	out := struct {
		Healthy bool             `json:"healthy"`
		Summary summaryJSON      `json:"summary"`
		Checks  []initcmd.Result `json:"checks"`
	}{
		Healthy: failed == 0,
		Summary: summaryJSON{Passed: passed, Warned: warned, Failed: failed},
		Checks:  results,
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, out)
}

func (cmd *DoctorCmd) outputText(p *printer.Printer, results []initcmd.Result) {
	for _, result := range results {
		p.Section(result.Name)
		for _, item := range result.Items {
			switch item.Status {
			case initcmd.StatusPass:
				p.CheckItem(item.Label, item.Detail)
			case initcmd.StatusWarn:
				p.WarnItem(item.Label, item.Detail)
			case initcmd.StatusFail:
				p.FailItem(item.Label, item.Detail)
			}
		}
		p.Printf("")
	}

	passed, warned, failed := initcmd.Summary(results)
	p.Printf("%s  %s  %s",
		styles.SuccessStyle.Render(fmt.Sprintf("%d passed", passed)),
		styles.WarningStyle.Render(fmt.Sprintf("%d warnings", warned)),
		styles.ErrorStyle.Render(fmt.Sprintf("%d failed", failed)),
	)
}
