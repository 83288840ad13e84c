package server

import (
	"github.com/urfave/cli/v2"

	"tasklog.dev/backend/internal/app"
	"tasklog.dev/backend/internal/app/appcontext"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "start",
		Usage: "start server",
		Action: func(c *cli.Context) error {
			app.New(appcontext.Declare(appcontext.EnvServer), Serve()).Run()
			return nil
		},
	}
}
