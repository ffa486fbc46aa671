package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"exusiai.dev/statsboard/cmd/app/cli/fetch"
	"exusiai.dev/statsboard/cmd/app/server"
	"exusiai.dev/statsboard/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "statsboard",
		Description: "Fridge Sales Stats dashboard. Renders the statistics served by the stats backend. Built with Go, fiber and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			fetch.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
