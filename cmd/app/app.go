package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"pasaydan.org/backend/cmd/app/server"
	"pasaydan.org/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "pasaydan-backend",
		Description: "The Pasaydan NGO Backend. Built with Go, fiber, bun and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
