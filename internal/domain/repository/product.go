package repository

import (
	"context"

	"github.com/shopworks/storefront/internal/domain/model"
)

// ProductRepository describes persistence operations for the catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	// Delete removes the product and returns the deleted row so callers can
	// clean up derived state (stored image, featured cache).
	Delete(ctx context.Context, id int64) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	ListFeatured(ctx context.Context) ([]model.Product, error)
	ListByCategory(ctx context.Context, category string) ([]model.Product, error)
	Random(ctx context.Context, limit int) ([]model.Product, error)
}
