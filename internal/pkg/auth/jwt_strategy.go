package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid auth token")

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// claims embeds the user identifier as the only custom claim.
type claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// JWTStrategy signs HS256 tokens, one secret per token class.
type JWTStrategy struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTStrategy builds JWTStrategy with the provided secrets and options.
func NewJWTStrategy(accessSecret, refreshSecret string, opts Options) *JWTStrategy {
	accessTTL := opts.AccessTTL
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	refreshTTL := opts.RefreshTTL
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &JWTStrategy{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// IssuePair mints an access/refresh token pair for the user. Minting is pure;
// persisting the refresh token is the caller's responsibility.
func (s *JWTStrategy) IssuePair(userID int64) (TokenPair, error) {
	access, err := s.IssueAccess(userID)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := sign(userID, s.refreshSecret, s.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// IssueAccess mints only the short-lived access token, used on refresh where
// the refresh token is not rotated.
func (s *JWTStrategy) IssueAccess(userID int64) (string, error) {
	return sign(userID, s.accessSecret, s.accessTTL)
}

// ParseAccess validates an access token and returns the embedded user ID.
func (s *JWTStrategy) ParseAccess(token string) (int64, error) {
	return parse(token, s.accessSecret)
}

// ParseRefresh validates a refresh token and returns the embedded user ID.
func (s *JWTStrategy) ParseRefresh(token string) (int64, error) {
	return parse(token, s.refreshSecret)
}

func sign(userID int64, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(secret)
}

func parse(tokenString string, secret []byte) (int64, error) {
	parsed := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}
	return parsed.UserID, nil
}
