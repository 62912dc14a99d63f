package repository

import (
	"context"

	"github.com/shopworks/storefront/internal/domain/model"
)

// FeaturedProductCache holds a pre-rendered featured-products listing.
// Get reports a miss with ok=false rather than an error so callers can
// fall through to the database.
type FeaturedProductCache interface {
	Get(ctx context.Context) (products []model.Product, ok bool, err error)
	Set(ctx context.Context, products []model.Product) error
	Invalidate(ctx context.Context) error
}
