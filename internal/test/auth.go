package test

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopworks/storefront/internal/domain/model"
	pkgAuth "github.com/shopworks/storefront/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses both token classes via overrides. The
// defaults encode the user ID into readable token strings.
type StrategyStub struct {
	IssuePairFn    func(int64) (pkgAuth.TokenPair, error)
	IssueAccessFn  func(int64) (string, error)
	ParseAccessFn  func(string) (int64, error)
	ParseRefreshFn func(string) (int64, error)
}

// IssuePair returns deterministic access/refresh tokens for tests.
func (s StrategyStub) IssuePair(userID int64) (pkgAuth.TokenPair, error) {
	if s.IssuePairFn != nil {
		return s.IssuePairFn(userID)
	}
	return pkgAuth.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", userID),
		RefreshToken: fmt.Sprintf("refresh-%d", userID),
	}, nil
}

// IssueAccess returns a deterministic access token.
func (s StrategyStub) IssueAccess(userID int64) (string, error) {
	if s.IssueAccessFn != nil {
		return s.IssueAccessFn(userID)
	}
	return fmt.Sprintf("access-%d", userID), nil
}

// ParseAccess parses tokens produced by IssuePair and IssueAccess.
func (s StrategyStub) ParseAccess(token string) (int64, error) {
	if s.ParseAccessFn != nil {
		return s.ParseAccessFn(token)
	}
	return parseStubToken(token, "access-%d")
}

// ParseRefresh parses refresh tokens produced by IssuePair.
func (s StrategyStub) ParseRefresh(token string) (int64, error) {
	if s.ParseRefreshFn != nil {
		return s.ParseRefreshFn(token)
	}
	return parseStubToken(token, "refresh-%d")
}

func parseStubToken(token, format string) (int64, error) {
	var id int64
	if _, err := fmt.Sscanf(token, format, &id); err != nil {
		return 0, pkgAuth.ErrInvalidToken
	}
	return id, nil
}

// SessionResolverStub maps access tokens to users for middleware tests.
type SessionResolverStub struct {
	ResolveFn func(context.Context, string) (*model.User, error)
	User      *model.User
	Err       error
}

// ResolveAccessToken returns the configured user or error.
func (s SessionResolverStub) ResolveAccessToken(ctx context.Context, token string) (*model.User, error) {
	if s.ResolveFn != nil {
		return s.ResolveFn(ctx, token)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return s.User, nil
}
