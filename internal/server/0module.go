package server

import (
	"go.uber.org/fx"

	"pasaydan.org/backend/internal/server/httpserver"
	"pasaydan.org/backend/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
