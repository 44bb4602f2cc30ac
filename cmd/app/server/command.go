package server

import (
	"github.com/urfave/cli/v2"

	"pasaydan.org/backend/internal/app"
	"pasaydan.org/backend/internal/app/appcontext"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "start the API server",
		Action: func(c *cli.Context) error {
			app.New(appcontext.Declare(appcontext.EnvServer)).Run()
			return nil
		},
	}
}
