// Package redis backs the session store and the featured-products cache
// with a single Redis connection.
package redis

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopworks/storefront/internal/domain/model"
)

const (
	refreshTokenPrefix = "refresh_token:"
	featuredCacheKey   = "featured_products"
)

// commands is the slice of redis.Client the storage needs. Tests supply
// an in-memory implementation.
type commands interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// Storage owns the Redis connection and hands out the stores built on it.
type Storage struct {
	client commands
	logger *slog.Logger
}

func New(ctx context.Context, addr, password string, logger *slog.Logger) (*Storage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	logger.Info("connected to redis", slog.String("addr", addr))
	return &Storage{client: client, logger: logger}, nil
}

func (s *Storage) Close() {
	if s.client == nil {
		return
	}
	if err := s.client.Close(); err != nil && s.logger != nil {
		s.logger.Error("failed to close redis client", "error", err)
	}
}

func (s *Storage) Sessions(refreshTTL time.Duration) *SessionStore {
	return &SessionStore{client: s.client, ttl: refreshTTL}
}

func (s *Storage) FeaturedCache(ttl time.Duration) *FeaturedCache {
	return &FeaturedCache{client: s.client, ttl: ttl, logger: s.logger}
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// SessionStore keeps one refresh token per user. Issuing a new pair
// overwrites the previous token, so a login on a second device revokes
// the first device's session.
type SessionStore struct {
	client commands
	ttl    time.Duration
}

func sessionKey(userID int64) string {
	return refreshTokenPrefix + strconv.FormatInt(userID, 10)
}

func (s *SessionStore) Save(ctx context.Context, userID int64, token string) error {
	if err := s.client.Set(ctx, sessionKey(userID), token, s.ttl).Err(); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

func (s *SessionStore) Verify(ctx context.Context, userID int64, token string) (bool, error) {
	stored, err := s.client.Get(ctx, sessionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load refresh token: %w", err)
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(token)) == 1, nil
}

func (s *SessionStore) Revoke(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

// FeaturedCache stores the featured-products listing as a JSON blob.
type FeaturedCache struct {
	client commands
	ttl    time.Duration
	logger *slog.Logger
}

func (c *FeaturedCache) Get(ctx context.Context) ([]model.Product, bool, error) {
	payload, err := c.client.Get(ctx, featuredCacheKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load featured cache: %w", err)
	}

	var products []model.Product
	if err := json.Unmarshal([]byte(payload), &products); err != nil {
		// A corrupt entry is treated as a miss and dropped so the next
		// write replaces it.
		c.logger.Warn("discarding corrupt featured cache entry", "error", err)
		_ = c.client.Del(ctx, featuredCacheKey).Err()
		return nil, false, nil
	}
	return products, true, nil
}

func (c *FeaturedCache) Set(ctx context.Context, products []model.Product) error {
	payload, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("encode featured cache: %w", err)
	}
	if err := c.client.Set(ctx, featuredCacheKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("store featured cache: %w", err)
	}
	return nil
}

func (c *FeaturedCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, featuredCacheKey).Err(); err != nil {
		return fmt.Errorf("invalidate featured cache: %w", err)
	}
	return nil
}
