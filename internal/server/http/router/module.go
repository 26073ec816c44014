package router

import (
	"go.uber.org/fx"

	"github.com/vantran-dev/storefront/internal/config"
	"github.com/vantran-dev/storefront/internal/server/http/response"
)

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(
	func(cfg *config.Config) *response.Responder {
		return response.NewResponder(cfg.ResponseTimezone)
	},
	Setup,
)
