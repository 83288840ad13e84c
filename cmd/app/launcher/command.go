package launcher

import (
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "launch",
		Usage: "start server and open the UI in the default browser",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "no-browser",
				Usage: "do not open the browser once the server is up",
			},
		},
		Action: func(c *cli.Context) error {
			return Run(c.Context, !c.Bool("no-browser"))
		},
	}
}
