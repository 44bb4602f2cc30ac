package app

import (
	"time"

	"go.uber.org/fx"

	"pasaydan.org/backend/internal/app/appconfig"
	"pasaydan.org/backend/internal/app/appcontext"
	"pasaydan.org/backend/internal/controller"
	"pasaydan.org/backend/internal/infra"
	"pasaydan.org/backend/internal/pkg/logger"
	"pasaydan.org/backend/internal/repo"
	"pasaydan.org/backend/internal/server"
	"pasaydan.org/backend/internal/server/httpserver"
	"pasaydan.org/backend/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Misc
		fx.Supply(conf),

		// Infrastructures
		infra.Module(),

		// Servers
		server.Module(),

		// Repositories
		repo.Module(),

		// Services
		service.Module(),

		// Controllers
		controller.Module(),

		// Entrypoint
		fx.Invoke(httpserver.Run),

		// fx Extra Options
		fx.StartTimeout(30 * time.Second),
		// StopTimeout is not typically needed, since we're using fiber's Shutdown(),
		// in which fiber has its own IdleTimeout for controlling the shutdown timeout.
		// It acts as a countermeasure in case the fiber app is not properly shutting down.
		fx.StopTimeout(5 * time.Minute),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
