package redis

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/shopworks/storefront/internal/config"
	"github.com/shopworks/storefront/internal/domain/repository"
)

// Module wires the Redis connection, the refresh-token store, and the
// featured-products cache.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage, cfg *config.Config) repository.SessionRepository {
			return s.Sessions(cfg.RefreshTokenTTL)
		},
		func(s *Storage, cfg *config.Config) repository.FeaturedProductCache {
			return s.FeaturedCache(cfg.FeaturedCacheTTL)
		},
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.RedisAddr, p.Config.RedisPassword, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
