package di

import (
	"github.com/shopworks/storefront/internal/adapter/images"
	"github.com/shopworks/storefront/internal/app"
	"github.com/shopworks/storefront/internal/config"
	"github.com/shopworks/storefront/internal/logger"
	"github.com/shopworks/storefront/internal/pkg/auth"
	"github.com/shopworks/storefront/internal/server/http/handlers"
	"github.com/shopworks/storefront/internal/server/http/router"
	"github.com/shopworks/storefront/internal/storage/postgres"
	"github.com/shopworks/storefront/internal/storage/redis"
	"github.com/shopworks/storefront/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		redis.Module,
		images.Module,
		usecase.Module,
		fx.Provide(func(facade *app.StoreFacade) handlers.StorefrontFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
