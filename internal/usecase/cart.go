package usecase

import (
	"context"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/domain/repository"
)

// CartUseCase manages per-user cart lines. Mutating calls return the
// resulting cart so handlers can echo it back in one round trip.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// Items returns the cart with product data joined in.
func (u *CartUseCase) Items(ctx context.Context, userID int64) ([]model.CartLine, error) {
	return u.carts.Lines(ctx, userID)
}

// Add puts one unit of the product into the cart. An existing line is
// incremented instead of duplicated.
func (u *CartUseCase) Add(ctx context.Context, userID, productID int64) ([]model.CartLine, error) {
	if productID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	if _, err := u.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	if err := u.carts.Add(ctx, userID, productID); err != nil {
		return nil, err
	}
	return u.carts.Lines(ctx, userID)
}

// Remove drops one line, or the whole cart when productID is zero.
func (u *CartUseCase) Remove(ctx context.Context, userID, productID int64) ([]model.CartLine, error) {
	if productID == 0 {
		if err := u.carts.Clear(ctx, userID); err != nil {
			return nil, err
		}
		return u.carts.Lines(ctx, userID)
	}

	removed, err := u.carts.Remove(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, domainErrors.ErrNotFound
	}
	return u.carts.Lines(ctx, userID)
}

// UpdateQuantity sets the quantity of an existing line. A non-positive
// quantity removes the line instead.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) ([]model.CartLine, error) {
	if productID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}

	if quantity <= 0 {
		removed, err := u.carts.Remove(ctx, userID, productID)
		if err != nil {
			return nil, err
		}
		if !removed {
			return nil, domainErrors.ErrNotFound
		}
		return u.carts.Lines(ctx, userID)
	}

	updated, err := u.carts.SetQuantity(ctx, userID, productID, quantity)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, domainErrors.ErrNotFound
	}
	return u.carts.Lines(ctx, userID)
}
