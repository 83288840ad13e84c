package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"tasklog.dev/backend/cmd/app/cli/migrate"
	"tasklog.dev/backend/cmd/app/launcher"
	"tasklog.dev/backend/cmd/app/server"
	"tasklog.dev/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        bininfo.Name,
		Usage:       "track time spent on tasks",
		Description: "Task Logger backend. Records stopwatch and manual time entries against tasks and serves the web UI. Built with Go, fiber, bun and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			launcher.Command(),
			migrate.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
