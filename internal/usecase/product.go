package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shopworks/storefront/internal/adapter/images"
	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/domain/repository"
)

const recommendedCount = 3

// CreateProductInput carries fields for a new catalog entry. Image, when
// present, is a base64 data URL.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	IsFeatured  bool
}

// ProductUseCase manages the catalog. Featured listings go through a
// Redis cache that is invalidated on every catalog mutation and
// re-primed by a background worker.
type ProductUseCase struct {
	products repository.ProductRepository
	cache    repository.FeaturedProductCache
	images   images.Store
	logger   *slog.Logger
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository, cache repository.FeaturedProductCache, store images.Store, logger *slog.Logger) *ProductUseCase {
	return &ProductUseCase{products: products, cache: cache, images: store, logger: logger}
}

// List returns the full catalog.
func (u *ProductUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// Featured returns the featured listing, serving from cache when
// possible. An empty listing maps to ErrNotFound. Cache failures are
// logged and the database answer is served instead.
func (u *ProductUseCase) Featured(ctx context.Context) ([]model.Product, error) {
	cached, ok, err := u.cache.Get(ctx)
	if err != nil {
		u.logger.Warn("featured cache read failed", "error", err)
	} else if ok {
		if len(cached) == 0 {
			return nil, domainErrors.ErrNotFound
		}
		return cached, nil
	}

	products, err := u.products.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, domainErrors.ErrNotFound
	}

	if err := u.cache.Set(ctx, products); err != nil {
		u.logger.Warn("featured cache write failed", "error", err)
	}
	return products, nil
}

// ByCategory returns products in one category.
func (u *ProductUseCase) ByCategory(ctx context.Context, category string) ([]model.Product, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.products.ListByCategory(ctx, category)
}

// Recommended returns a small random product sample.
func (u *ProductUseCase) Recommended(ctx context.Context) ([]model.Product, error) {
	return u.products.Random(ctx, recommendedCount)
}

// Create validates the input, uploads the image when one is attached,
// and stores the product. The featured cache is dropped so the next
// read sees the new entry.
func (u *ProductUseCase) Create(ctx context.Context, input CreateProductInput) (*model.Product, error) {
	if strings.TrimSpace(input.Name) == "" || input.Price <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}

	product := &model.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Category:    strings.ToLower(strings.TrimSpace(input.Category)),
		IsFeatured:  input.IsFeatured,
	}

	if input.Image != "" {
		obj, err := u.images.Upload(ctx, input.Image)
		if err != nil {
			if errors.Is(err, images.ErrInvalidImage) {
				return nil, domainErrors.ErrInvalidInput
			}
			return nil, err
		}
		product.ImageURL = obj.URL
		product.ImageKey = obj.Key
	}

	created, err := u.products.Create(ctx, product)
	if err != nil {
		// The image is already in the bucket; drop it so failed
		// creates do not leak objects.
		if product.ImageKey != "" {
			if delErr := u.images.Delete(ctx, product.ImageKey); delErr != nil {
				u.logger.Error("failed to delete orphaned image", "key", product.ImageKey, "error", delErr)
			}
		}
		return nil, err
	}

	u.invalidateFeatured(ctx)
	return created, nil
}

// Delete removes a product. The S3 object removal is best-effort; a
// dangling object is preferable to a product that cannot be deleted.
func (u *ProductUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := u.products.Delete(ctx, id)
	if err != nil {
		return err
	}

	if deleted.ImageKey != "" {
		if err := u.images.Delete(ctx, deleted.ImageKey); err != nil {
			u.logger.Error("failed to delete product image", "key", deleted.ImageKey, "error", err)
		}
	}

	u.invalidateFeatured(ctx)
	return nil
}

// RefreshFeatured rebuilds the featured cache from the database. The
// background worker calls this on a timer.
func (u *ProductUseCase) RefreshFeatured(ctx context.Context) error {
	products, err := u.products.ListFeatured(ctx)
	if err != nil {
		return err
	}
	return u.cache.Set(ctx, products)
}

func (u *ProductUseCase) invalidateFeatured(ctx context.Context) {
	if err := u.cache.Invalidate(ctx); err != nil {
		u.logger.Warn("featured cache invalidation failed", "error", err)
	}
}
