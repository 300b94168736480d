package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/abhinav4568482/pyterminal/internal/printer"
	"github.com/abhinav4568482/pyterminal/internal/server"
)

const shutdownTimeout = 10 * time.Second

type ServeCmd struct {
	flags *Flags
	app   *App
	addr  string
	pprof bool
}

// NewServeCmd creates the HTTP API command.
func NewServeCmd(flags *Flags, app *App) *ServeCmd {
	return &ServeCmd{flags: flags, app: app}
}

// Register adds the serve command to the application.
func (cmd *ServeCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "serve",
		Usage:     "Serve the interpreter over HTTP",
		UsageText: "pyterminal serve [--addr host:port]",
		Description: `Starts a JSON API:

  POST /execute   {"command": "..."} runs one line for the caller's session
  GET  /history   lists the session's history (?limit=N keeps the newest N)

Sessions are tracked with the pyterminal_session cookie. Anyone who can reach
the address can run shell commands, so keep it on loopback unless you mean it.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address (defaults to server.addr from config)",
				Sources:     cli.EnvVars("PYTERMINAL_ADDR"),
				Destination: &cmd.addr,
			},
			&cli.BoolFlag{
				Name:        "pprof",
				Usage:       "expose runtime profiling under /debug/pprof/",
				Destination: &cmd.pprof,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ServeCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)

	addr := cmd.addr
	if addr == "" {
		addr = cmd.app.Config.Server.Addr
	}

	srv := server.New(cmd.app.Dispatcher, cmd.app.Sessions, server.Options{
		Addr:         addr,
		MaxBodyBytes: cmd.app.Config.MaxBodyBytes(),
		Pprof:        cmd.pprof,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		return err
	}
	p.Successf("Listening on http://%s", srv.Addr())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Wait)
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	p.Infof("Server stopped")
	return nil
}
