package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/pulseboard/backend/cmd/app/cli/runscript"
	"github.com/pulseboard/backend/cmd/app/server"
	"github.com/pulseboard/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "pulseboard",
		Description: "The Pulseboard activity dashboard backend. Built with Go, fiber, bun and go.uber.org/fx on PostgreSQL.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
			runscript.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
