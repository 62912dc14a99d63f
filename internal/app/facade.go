package app

import (
	"context"

	"github.com/shopworks/storefront/internal/domain/model"
	pkgAuth "github.com/shopworks/storefront/internal/pkg/auth"
	"github.com/shopworks/storefront/internal/usecase"
)

// StoreFacade aggregates the use cases behind a single surface consumed
// by the HTTP handlers and the cache refresher.
type StoreFacade struct {
	auth     *usecase.AuthUseCase
	products *usecase.ProductUseCase
	carts    *usecase.CartUseCase
}

func NewStoreFacade(auth *usecase.AuthUseCase, products *usecase.ProductUseCase, carts *usecase.CartUseCase) *StoreFacade {
	return &StoreFacade{auth: auth, products: products, carts: carts}
}

func (f *StoreFacade) Signup(ctx context.Context, name, email, password string) (*model.User, pkgAuth.TokenPair, error) {
	return f.auth.Signup(ctx, name, email, password)
}

func (f *StoreFacade) Login(ctx context.Context, email, password string) (*model.User, pkgAuth.TokenPair, error) {
	return f.auth.Login(ctx, email, password)
}

func (f *StoreFacade) Logout(ctx context.Context, refreshToken string) error {
	return f.auth.Logout(ctx, refreshToken)
}

func (f *StoreFacade) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	return f.auth.Refresh(ctx, refreshToken)
}

func (f *StoreFacade) ResolveAccessToken(ctx context.Context, token string) (*model.User, error) {
	return f.auth.ResolveAccess(ctx, token)
}

func (f *StoreFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.products.List(ctx)
}

func (f *StoreFacade) FeaturedProducts(ctx context.Context) ([]model.Product, error) {
	return f.products.Featured(ctx)
}

func (f *StoreFacade) ProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return f.products.ByCategory(ctx, category)
}

func (f *StoreFacade) RecommendedProducts(ctx context.Context) ([]model.Product, error) {
	return f.products.Recommended(ctx)
}

func (f *StoreFacade) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*model.Product, error) {
	return f.products.Create(ctx, input)
}

func (f *StoreFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.products.Delete(ctx, id)
}

func (f *StoreFacade) RefreshFeaturedCatalog(ctx context.Context) error {
	return f.products.RefreshFeatured(ctx)
}

func (f *StoreFacade) CartItems(ctx context.Context, userID int64) ([]model.CartLine, error) {
	return f.carts.Items(ctx, userID)
}

func (f *StoreFacade) AddToCart(ctx context.Context, userID, productID int64) ([]model.CartLine, error) {
	return f.carts.Add(ctx, userID, productID)
}

func (f *StoreFacade) RemoveFromCart(ctx context.Context, userID, productID int64) ([]model.CartLine, error) {
	return f.carts.Remove(ctx, userID, productID)
}

func (f *StoreFacade) UpdateCartItem(ctx context.Context, userID, productID int64, quantity int) ([]model.CartLine, error) {
	return f.carts.UpdateQuantity(ctx, userID, productID, quantity)
}
