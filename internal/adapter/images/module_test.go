package images

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopworks/storefront/internal/config"
)

func TestNewStoreUsesConfig(t *testing.T) {
	cfg := &config.Config{
		S3Bucket:    "images",
		S3Region:    "us-east-1",
		S3Endpoint:  "http://localhost:9000",
		S3AccessKey: "key",
		S3SecretKey: "secret",
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	store, err := newStore(storeParams{Ctx: context.Background(), Config: cfg, Logger: logger})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store == nil {
		t.Fatal("expected store instance")
	}
}

func TestNewStoreRejectsMissingBucket(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := newStore(storeParams{Ctx: context.Background(), Config: &config.Config{}, Logger: logger}); err == nil {
		t.Fatal("expected error for missing bucket")
	}
}
