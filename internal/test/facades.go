package test

import (
	"context"

	"github.com/shopworks/storefront/internal/adapter/images"
	"github.com/shopworks/storefront/internal/domain/model"
	pkgAuth "github.com/shopworks/storefront/internal/pkg/auth"
	"github.com/shopworks/storefront/internal/usecase"
)

// ImageStoreStub records uploads and deletions for catalog tests.
type ImageStoreStub struct {
	UploadFn func(context.Context, string) (*images.Object, error)
	DeleteFn func(context.Context, string) error

	Uploaded []string
	Deleted  []string
}

// Upload returns a deterministic object unless overridden.
func (s *ImageStoreStub) Upload(ctx context.Context, dataURL string) (*images.Object, error) {
	s.Uploaded = append(s.Uploaded, dataURL)
	if s.UploadFn != nil {
		return s.UploadFn(ctx, dataURL)
	}
	return &images.Object{Key: "products/stub.png", URL: "https://cdn.example.com/products/stub.png"}, nil
}

// Delete records the removed key.
func (s *ImageStoreStub) Delete(ctx context.Context, key string) error {
	s.Deleted = append(s.Deleted, key)
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, key)
	}
	return nil
}

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	SignupFn  func(context.Context, string, string, string) (*model.User, pkgAuth.TokenPair, error)
	LoginFn   func(context.Context, string, string) (*model.User, pkgAuth.TokenPair, error)
	LogoutFn  func(context.Context, string) error
	RefreshFn func(context.Context, string) (string, error)
}

// Signup delegates to the override or returns a default customer.
func (s AuthFacadeStub) Signup(ctx context.Context, name, email, password string) (*model.User, pkgAuth.TokenPair, error) {
	if s.SignupFn != nil {
		return s.SignupFn(ctx, name, email, password)
	}
	user := &model.User{ID: 1, Name: name, Email: email, Role: model.RoleCustomer}
	return user, pkgAuth.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"}, nil
}

// Login delegates to the override or returns a default customer.
func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (*model.User, pkgAuth.TokenPair, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	user := &model.User{ID: 1, Email: email, Role: model.RoleCustomer}
	return user, pkgAuth.TokenPair{AccessToken: "access-1", RefreshToken: "refresh-1"}, nil
}

// Logout executes the configured override.
func (s AuthFacadeStub) Logout(ctx context.Context, refreshToken string) error {
	if s.LogoutFn != nil {
		return s.LogoutFn(ctx, refreshToken)
	}
	return nil
}

// RefreshAccessToken returns a new access token.
func (s AuthFacadeStub) RefreshAccessToken(ctx context.Context, refreshToken string) (string, error) {
	if s.RefreshFn != nil {
		return s.RefreshFn(ctx, refreshToken)
	}
	return "access-2", nil
}

// CatalogFacadeStub simulates catalog operations for handler tests.
type CatalogFacadeStub struct {
	ProductsFn    func(context.Context) ([]model.Product, error)
	FeaturedFn    func(context.Context) ([]model.Product, error)
	ByCategoryFn  func(context.Context, string) ([]model.Product, error)
	RecommendedFn func(context.Context) ([]model.Product, error)
	CreateFn      func(context.Context, usecase.CreateProductInput) (*model.Product, error)
	DeleteFn      func(context.Context, int64) error

	Items []model.Product
}

// Products returns stored items or the override result.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return s.Items, nil
}

// FeaturedProducts returns stored items or the override result.
func (s CatalogFacadeStub) FeaturedProducts(ctx context.Context) ([]model.Product, error) {
	if s.FeaturedFn != nil {
		return s.FeaturedFn(ctx)
	}
	return s.Items, nil
}

// ProductsByCategory returns stored items or the override result.
func (s CatalogFacadeStub) ProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	if s.ByCategoryFn != nil {
		return s.ByCategoryFn(ctx, category)
	}
	return s.Items, nil
}

// RecommendedProducts returns stored items or the override result.
func (s CatalogFacadeStub) RecommendedProducts(ctx context.Context) ([]model.Product, error) {
	if s.RecommendedFn != nil {
		return s.RecommendedFn(ctx)
	}
	return s.Items, nil
}

// CreateProduct delegates to the override or echoes the input.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, input)
	}
	return &model.Product{ID: 1, Name: input.Name, Price: input.Price, Category: input.Category}, nil
}

// DeleteProduct executes the configured override.
func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// CartFacadeStub simulates cart operations for handler tests.
type CartFacadeStub struct {
	ItemsFn  func(context.Context, int64) ([]model.CartLine, error)
	AddFn    func(context.Context, int64, int64) ([]model.CartLine, error)
	RemoveFn func(context.Context, int64, int64) ([]model.CartLine, error)
	UpdateFn func(context.Context, int64, int64, int) ([]model.CartLine, error)

	Lines []model.CartLine
}

// CartItems returns stored lines or the override result.
func (s CartFacadeStub) CartItems(ctx context.Context, userID int64) ([]model.CartLine, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx, userID)
	}
	return s.Lines, nil
}

// AddToCart returns stored lines or the override result.
func (s CartFacadeStub) AddToCart(ctx context.Context, userID, productID int64) ([]model.CartLine, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, productID)
	}
	return s.Lines, nil
}

// RemoveFromCart returns stored lines or the override result.
func (s CartFacadeStub) RemoveFromCart(ctx context.Context, userID, productID int64) ([]model.CartLine, error) {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, productID)
	}
	return s.Lines, nil
}

// UpdateCartItem returns stored lines or the override result.
func (s CartFacadeStub) UpdateCartItem(ctx context.Context, userID, productID int64, quantity int) ([]model.CartLine, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, productID, quantity)
	}
	return s.Lines, nil
}

// StorefrontFacadeStub aggregates the facade stubs for router tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	SessionResolverStub
	CatalogFacadeStub
	CartFacadeStub
}
