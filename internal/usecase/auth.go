package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
	"github.com/shopworks/storefront/internal/domain/repository"
	pkgAuth "github.com/shopworks/storefront/internal/pkg/auth"
)

// AuthUseCase handles the account lifecycle and the token pair that
// represents a session. The refresh token is persisted per user, so a
// fresh login supersedes the previous session.
type AuthUseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, sessions repository.SessionRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, sessions: sessions, hasher: hasher, tokens: strategy}
}

// Signup creates a customer account and opens a session for it.
func (u *AuthUseCase) Signup(ctx context.Context, name, email, password string) (*model.User, pkgAuth.TokenPair, error) {
	email = NormalizeEmail(email)
	if err := ValidateCredentials(name, email, password); err != nil {
		return nil, pkgAuth.TokenPair{}, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, pkgAuth.TokenPair{}, err
	}

	usr, err := u.users.Create(ctx, name, email, hash, model.RoleCustomer)
	if err != nil {
		return nil, pkgAuth.TokenPair{}, err
	}

	pair, err := u.openSession(ctx, usr.ID)
	if err != nil {
		return nil, pkgAuth.TokenPair{}, err
	}
	return usr, pair, nil
}

// Login validates credentials and opens a session. Lookup failure and
// password mismatch collapse into the same error so callers cannot
// probe which emails are registered.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*model.User, pkgAuth.TokenPair, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, pkgAuth.TokenPair{}, domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, pkgAuth.TokenPair{}, domainErrors.ErrInvalidCredentials
		}
		return nil, pkgAuth.TokenPair{}, err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, pkgAuth.TokenPair{}, domainErrors.ErrInvalidCredentials
	}

	pair, err := u.openSession(ctx, usr.ID)
	if err != nil {
		return nil, pkgAuth.TokenPair{}, err
	}
	return usr, pair, nil
}

func (u *AuthUseCase) openSession(ctx context.Context, userID int64) (pkgAuth.TokenPair, error) {
	pair, err := u.tokens.IssuePair(userID)
	if err != nil {
		return pkgAuth.TokenPair{}, err
	}
	if err := u.sessions.Save(ctx, userID, pair.RefreshToken); err != nil {
		return pkgAuth.TokenPair{}, err
	}
	return pair, nil
}

// Logout revokes the session named by the refresh token. An unreadable
// token means there is nothing to revoke, so it is not an error.
func (u *AuthUseCase) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	userID, err := u.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return nil
	}
	return u.sessions.Revoke(ctx, userID)
}

// Refresh exchanges a valid refresh token for a new access token. The
// token must still match the one stored for the user; a superseded or
// revoked token is rejected.
func (u *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domainErrors.ErrUnauthenticated
	}

	userID, err := u.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return "", pkgAuth.ErrInvalidToken
	}

	valid, err := u.sessions.Verify(ctx, userID, refreshToken)
	if err != nil {
		return "", err
	}
	if !valid {
		return "", pkgAuth.ErrInvalidToken
	}

	return u.tokens.IssueAccess(userID)
}

// ResolveAccess maps an access token to its user. The role is read from
// storage on every call so a role change takes effect immediately.
func (u *AuthUseCase) ResolveAccess(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	userID, err := u.tokens.ParseAccess(token)
	if err != nil {
		return nil, err
	}
	return u.users.GetByID(ctx, userID)
}
