package test

import (
	"context"
	"strings"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests, keyed by email.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Name: name, Email: email, PasswordHash: passwordHash, Role: role}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub stores catalog entries in-memory with optional
// overrides per operation.
type ProductRepositoryStub struct {
	CreateFn func(context.Context, *model.Product) (*model.Product, error)
	DeleteFn func(context.Context, int64) (*model.Product, error)
	ListFn   func(context.Context) ([]model.Product, error)

	Products []model.Product
	Next     int64
	Err      error
}

// Create appends product to the stored slice.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Next == 0 {
		s.Next = 1
	}
	created := *product
	created.ID = s.Next
	s.Next++
	s.Products = append(s.Products, created)
	return &created, nil
}

// Delete removes matched product and returns it.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) (*model.Product, error) {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	for i, p := range s.Products {
		if p.ID == id {
			deleted := p
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID returns matched product or not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored products.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Products, nil
}

// ListFeatured filters stored products by the featured flag.
func (s *ProductRepositoryStub) ListFeatured(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var featured []model.Product
	for _, p := range s.Products {
		if p.IsFeatured {
			featured = append(featured, p)
		}
	}
	return featured, nil
}

// ListByCategory filters stored products by category.
func (s *ProductRepositoryStub) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var matched []model.Product
	for _, p := range s.Products {
		if strings.EqualFold(p.Category, category) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Random returns up to limit products in stored order.
func (s *ProductRepositoryStub) Random(ctx context.Context, limit int) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if limit > len(s.Products) {
		limit = len(s.Products)
	}
	return s.Products[:limit], nil
}

// CartRepositoryStub keeps cart lines in-memory per user.
type CartRepositoryStub struct {
	Quantities map[int64]map[int64]int
	Catalog    *ProductRepositoryStub
	Err        error
}

// NewCartRepositoryStub constructs cart stub backed by the given catalog.
func NewCartRepositoryStub(catalog *ProductRepositoryStub) *CartRepositoryStub {
	return &CartRepositoryStub{
		Quantities: make(map[int64]map[int64]int),
		Catalog:    catalog,
	}
}

func (s *CartRepositoryStub) cart(userID int64) map[int64]int {
	if s.Quantities == nil {
		s.Quantities = make(map[int64]map[int64]int)
	}
	if s.Quantities[userID] == nil {
		s.Quantities[userID] = make(map[int64]int)
	}
	return s.Quantities[userID]
}

// Add inserts line with quantity one or increments the existing line.
func (s *CartRepositoryStub) Add(ctx context.Context, userID, productID int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.cart(userID)[productID]++
	return nil
}

// Remove drops one line and reports whether it existed.
func (s *CartRepositoryStub) Remove(ctx context.Context, userID, productID int64) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	cart := s.cart(userID)
	if _, ok := cart[productID]; !ok {
		return false, nil
	}
	delete(cart, productID)
	return true, nil
}

// Clear drops every line for the user.
func (s *CartRepositoryStub) Clear(ctx context.Context, userID int64) error {
	if s.Err != nil {
		return s.Err
	}
	delete(s.Quantities, userID)
	return nil
}

// SetQuantity overwrites an existing line quantity.
func (s *CartRepositoryStub) SetQuantity(ctx context.Context, userID, productID int64, quantity int) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	cart := s.cart(userID)
	if _, ok := cart[productID]; !ok {
		return false, nil
	}
	cart[productID] = quantity
	return true, nil
}

// Lines joins stored quantities with catalog products.
func (s *CartRepositoryStub) Lines(ctx context.Context, userID int64) ([]model.CartLine, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var lines []model.CartLine
	for productID, quantity := range s.cart(userID) {
		line := model.CartLine{Quantity: quantity}
		if s.Catalog != nil {
			if product, err := s.Catalog.GetByID(ctx, productID); err == nil {
				line.Product = *product
			} else {
				line.Product = model.Product{ID: productID}
			}
		} else {
			line.Product = model.Product{ID: productID}
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// SessionRepositoryStub keeps one refresh token per user.
type SessionRepositoryStub struct {
	Tokens    map[int64]string
	SaveErr   error
	VerifyErr error
	RevokeErr error
	Revoked   []int64
}

// NewSessionRepositoryStub constructs session stub with initialized map.
func NewSessionRepositoryStub() *SessionRepositoryStub {
	return &SessionRepositoryStub{Tokens: make(map[int64]string)}
}

// Save stores the refresh token, replacing any previous one.
func (s *SessionRepositoryStub) Save(ctx context.Context, userID int64, token string) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if s.Tokens == nil {
		s.Tokens = make(map[int64]string)
	}
	s.Tokens[userID] = token
	return nil
}

// Verify reports whether the stored token matches.
func (s *SessionRepositoryStub) Verify(ctx context.Context, userID int64, token string) (bool, error) {
	if s.VerifyErr != nil {
		return false, s.VerifyErr
	}
	stored, ok := s.Tokens[userID]
	return ok && stored == token, nil
}

// Revoke drops the stored token and records the call.
func (s *SessionRepositoryStub) Revoke(ctx context.Context, userID int64) error {
	s.Revoked = append(s.Revoked, userID)
	if s.RevokeErr != nil {
		return s.RevokeErr
	}
	delete(s.Tokens, userID)
	return nil
}

// FeaturedCacheStub mimics the featured-products cache.
type FeaturedCacheStub struct {
	Products    []model.Product
	Hit         bool
	GetErr      error
	SetErr      error
	Invalidated int
}

// Get returns configured products and hit flag.
func (s *FeaturedCacheStub) Get(ctx context.Context) ([]model.Product, bool, error) {
	if s.GetErr != nil {
		return nil, false, s.GetErr
	}
	return s.Products, s.Hit, nil
}

// Set stores products and marks the cache warm.
func (s *FeaturedCacheStub) Set(ctx context.Context, products []model.Product) error {
	if s.SetErr != nil {
		return s.SetErr
	}
	s.Products = products
	s.Hit = true
	return nil
}

// Invalidate clears stored products and counts the call.
func (s *FeaturedCacheStub) Invalidate(ctx context.Context) error {
	s.Invalidated++
	s.Products = nil
	s.Hit = false
	return nil
}
