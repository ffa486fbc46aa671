package fetch

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "exusiai.dev/statsboard/cmd/app/cli"
	"exusiai.dev/statsboard/internal/service"
)

type CommandDeps struct {
	fx.In

	Loader *service.Loader
}

func Command() *cli.Command {
	return &cli.Command{
		Name:        "fetch",
		Usage:       "fetch the stats once and print the dashboard",
		Description: "loads the stats from the stats backend once and prints them as text, or as JSON with --json",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print the raw stats as JSON",
			},
		},
		Action: func(c *cli.Context) error {
			deps, stop, err := cliapp.Deps[CommandDeps]()
			if err != nil {
				return err
			}
			defer stop()

			return run(c.Context, c.App.Writer, deps, c.Bool("json"))
		},
	}
}
