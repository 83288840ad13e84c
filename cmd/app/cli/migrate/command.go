package migrate

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "tasklog.dev/backend/cmd/app/cli"
	"tasklog.dev/backend/internal/infra"
)

type CommandDeps struct {
	fx.In

	Migrator *infra.Migrator
}

// withDeps starts the CLI application, hands its dependencies to fn and stops it afterwards.
func withDeps(fn func(ctx context.Context, deps CommandDeps) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		var deps CommandDeps
		a, err := cliapp.Start(fx.Populate(&deps))
		if err != nil {
			return err
		}
		defer func() {
			if err := a.Stop(context.Background()); err != nil {
				log.Warn().Err(err).Msg("failed to stop app")
			}
		}()

		return fn(c.Context, deps)
	}
}

func Command() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "manage the database schema",
		// bare `migrate` brings the schema up to date
		Action: withDeps(func(ctx context.Context, deps CommandDeps) error {
			return deps.Migrator.Up(ctx)
		}),
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: withDeps(func(ctx context.Context, deps CommandDeps) error {
					return deps.Migrator.Up(ctx)
				}),
			},
			{
				Name:  "down",
				Usage: "revert the last applied migration",
				Action: withDeps(func(ctx context.Context, deps CommandDeps) error {
					return deps.Migrator.Down(ctx)
				}),
			},
			{
				Name:  "status",
				Usage: "print the current schema version",
				Action: withDeps(func(ctx context.Context, deps CommandDeps) error {
					status, err := deps.Migrator.Status(ctx)
					if err != nil {
						return err
					}
					log.Info().
						Uint("version", status.Version).
						Bool("dirty", status.Dirty).
						Msg("schema status")
					return nil
				}),
			},
		},
	}
}
