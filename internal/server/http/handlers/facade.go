package handlers

import (
	"context"

	"github.com/shopworks/storefront/internal/domain/model"
	pkgAuth "github.com/shopworks/storefront/internal/pkg/auth"
	"github.com/shopworks/storefront/internal/usecase"
)

// AuthFacade describes the session lifecycle operations used by handlers.
type AuthFacade interface {
	Signup(ctx context.Context, name, email, password string) (*model.User, pkgAuth.TokenPair, error)
	Login(ctx context.Context, email, password string) (*model.User, pkgAuth.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, error)
}

// SessionFacade resolves access tokens for route guards.
type SessionFacade interface {
	ResolveAccessToken(ctx context.Context, token string) (*model.User, error)
}

// CatalogFacade exposes product catalog operations over HTTP.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	FeaturedProducts(ctx context.Context) ([]model.Product, error)
	ProductsByCategory(ctx context.Context, category string) ([]model.Product, error)
	RecommendedProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// CartFacade provides per-user cart operations.
type CartFacade interface {
	CartItems(ctx context.Context, userID int64) ([]model.CartLine, error)
	AddToCart(ctx context.Context, userID, productID int64) ([]model.CartLine, error)
	RemoveFromCart(ctx context.Context, userID, productID int64) ([]model.CartLine, error)
	UpdateCartItem(ctx context.Context, userID, productID int64, quantity int) ([]model.CartLine, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	SessionFacade
	CatalogFacade
	CartFacade
}
