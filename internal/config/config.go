package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress  string
	DatabaseURI string

	RedisAddr     string
	RedisPassword string

	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string

	FeaturedCacheTTL     time.Duration
	CacheRefreshInterval time.Duration

	Environment     string
	ShutdownTimeout time.Duration
}

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

const (
	defaultRunAddress           = ":8000"
	defaultRedisAddr            = "localhost:6379"
	defaultAccessTokenSecret    = "change-me-access"
	defaultRefreshTokenSecret   = "change-me-refresh"
	defaultAccessTokenTTL       = 15 * time.Minute
	defaultRefreshTokenTTL      = 7 * 24 * time.Hour
	defaultS3Region             = "us-east-1"
	defaultFeaturedCacheTTL     = time.Hour
	defaultCacheRefreshInterval = 15 * time.Minute
	defaultEnvironment          = EnvDevelopment
	defaultShutdownTimeout      = 10 * time.Second
)

// Load parses configuration from an optional .env file, environment
// variables, and flags.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:           getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:          getString(lookup, "DATABASE_URI", ""),
		RedisAddr:            getString(lookup, "REDIS_ADDR", defaultRedisAddr),
		RedisPassword:        getString(lookup, "REDIS_PASSWORD", ""),
		AccessTokenSecret:    getString(lookup, "ACCESS_TOKEN_SECRET", defaultAccessTokenSecret),
		RefreshTokenSecret:   getString(lookup, "REFRESH_TOKEN_SECRET", defaultRefreshTokenSecret),
		AccessTokenTTL:       getDuration(lookup, "ACCESS_TOKEN_TTL", defaultAccessTokenTTL),
		RefreshTokenTTL:      getDuration(lookup, "REFRESH_TOKEN_TTL", defaultRefreshTokenTTL),
		S3Bucket:             getString(lookup, "S3_BUCKET", ""),
		S3Region:             getString(lookup, "S3_REGION", defaultS3Region),
		S3Endpoint:           getString(lookup, "S3_ENDPOINT", ""),
		S3AccessKey:          getString(lookup, "S3_ACCESS_KEY", ""),
		S3SecretKey:          getString(lookup, "S3_SECRET_KEY", ""),
		FeaturedCacheTTL:     getDuration(lookup, "FEATURED_CACHE_TTL", defaultFeaturedCacheTTL),
		CacheRefreshInterval: getDuration(lookup, "CACHE_REFRESH_INTERVAL", defaultCacheRefreshInterval),
		Environment:          getString(lookup, "ENVIRONMENT", defaultEnvironment),
		ShutdownTimeout:      getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		accessTTLStr    = cfg.AccessTokenTTL.String()
		refreshTTLStr   = cfg.RefreshTokenTTL.String()
		cacheRefreshStr = cfg.CacheRefreshInterval.String()
		shutdownStr     = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Redis address")
	fs.StringVar(&cfg.S3Bucket, "s3-bucket", cfg.S3Bucket, "S3 bucket for product images")
	fs.StringVar(&cfg.Environment, "environment", cfg.Environment, "Deployment environment (production|development)")
	fs.StringVar(&accessTTLStr, "access-ttl", accessTTLStr, "Access token lifetime")
	fs.StringVar(&refreshTTLStr, "refresh-ttl", refreshTTLStr, "Refresh token lifetime")
	fs.StringVar(&cacheRefreshStr, "cache-refresh", cacheRefreshStr, "Interval between featured catalog cache refreshes")
	fs.StringVar(&shutdownStr, "shutdown-timeout", shutdownStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.AccessTokenTTL, err = time.ParseDuration(accessTTLStr); err != nil {
		return nil, fmt.Errorf("invalid access token ttl: %w", err)
	}
	if cfg.RefreshTokenTTL, err = time.ParseDuration(refreshTTLStr); err != nil {
		return nil, fmt.Errorf("invalid refresh token ttl: %w", err)
	}
	if cfg.CacheRefreshInterval, err = time.ParseDuration(cacheRefreshStr); err != nil {
		return nil, fmt.Errorf("invalid cache refresh interval: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.AccessTokenTTL <= 0 {
		cfg.AccessTokenTTL = defaultAccessTokenTTL
	}
	if cfg.RefreshTokenTTL <= 0 {
		cfg.RefreshTokenTTL = defaultRefreshTokenTTL
	}
	if cfg.CacheRefreshInterval <= 0 {
		cfg.CacheRefreshInterval = defaultCacheRefreshInterval
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.Environment != EnvProduction && cfg.Environment != EnvDevelopment {
		return nil, fmt.Errorf("unknown environment %q", cfg.Environment)
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3 bucket must be provided")
	}

	return cfg, nil
}

// IsProduction reports whether the process runs with the production profile.
// It controls the Secure flag on session cookies.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
