package di

import (
	"go.uber.org/fx"

	"github.com/vantran-dev/storefront/internal/app"
	"github.com/vantran-dev/storefront/internal/config"
	"github.com/vantran-dev/storefront/internal/logger"
	"github.com/vantran-dev/storefront/internal/pkg/auth"
	"github.com/vantran-dev/storefront/internal/server/http/handlers"
	"github.com/vantran-dev/storefront/internal/server/http/router"
	"github.com/vantran-dev/storefront/internal/storage/postgres"
	"github.com/vantran-dev/storefront/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
