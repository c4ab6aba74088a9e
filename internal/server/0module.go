package server

import (
	"github.com/pulseboard/backend/internal/server/httpserver"
	"github.com/pulseboard/backend/internal/server/svr"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
