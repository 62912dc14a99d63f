package images

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/shopworks/storefront/internal/config"
)

// Module exposes the image store implementation to the fx graph.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) (Store, error) {
	return NewS3Store(p.Ctx, Options{
		Bucket:    p.Config.S3Bucket,
		Region:    p.Config.S3Region,
		Endpoint:  p.Config.S3Endpoint,
		AccessKey: p.Config.S3AccessKey,
		SecretKey: p.Config.S3SecretKey,
	}, p.Logger)
}
