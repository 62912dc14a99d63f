// Package images stores product images in an S3-compatible bucket.
// Clients submit images as base64 data URLs; the store decodes them,
// writes the bytes under a generated key, and returns a public URL.
package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ErrInvalidImage indicates the submitted payload is not a decodable
// image data URL of a supported type.
var ErrInvalidImage = errors.New("invalid image payload")

const keyPrefix = "products/"

// extensions maps accepted media types to object key suffixes.
var extensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Object describes a stored image.
type Object struct {
	Key string
	URL string
}

// Store exposes image persistence operations.
type Store interface {
	Upload(ctx context.Context, dataURL string) (*Object, error)
	Delete(ctx context.Context, key string) error
}

// s3API is the slice of the S3 client the store uses.
type s3API interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, input *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store implements Store backed by an S3 bucket. A custom endpoint
// switches the client to path-style addressing for MinIO-style servers.
type S3Store struct {
	api      s3API
	bucket   string
	region   string
	endpoint string
	logger   *slog.Logger
}

// Options configure the bucket connection.
type Options struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// NewS3Store builds the S3 client and verifies the options.
func NewS3Store(ctx context.Context, opts Options, logger *slog.Logger) (*S3Store, error) {
	if opts.Bucket == "" {
		return nil, errors.New("image store: bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("image store: load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		api:      client,
		bucket:   opts.Bucket,
		region:   opts.Region,
		endpoint: strings.TrimSuffix(opts.Endpoint, "/"),
		logger:   logger,
	}, nil
}

// Upload decodes the data URL and writes the image under a fresh key.
func (s *S3Store) Upload(ctx context.Context, dataURL string) (*Object, error) {
	mediaType, data, err := decodeDataURL(dataURL)
	if err != nil {
		return nil, err
	}

	key := keyPrefix + uuid.New().String() + extensions[mediaType]
	_, err = s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mediaType),
	})
	if err != nil {
		return nil, fmt.Errorf("image store: put object: %w", err)
	}

	s.logger.Info("uploaded product image", slog.String("key", key), slog.Int("size", len(data)))
	return &Object{Key: key, URL: s.objectURL(key)}, nil
}

// Delete removes a stored image by key.
func (s *S3Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("image store: delete object: %w", err)
	}
	return nil
}

func (s *S3Store) objectURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// decodeDataURL splits a "data:<type>;base64,<payload>" string and
// decodes the payload. Only media types listed in extensions pass.
func decodeDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing data prefix", ErrInvalidImage)
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing payload", ErrInvalidImage)
	}
	mediaType, encoding, ok := strings.Cut(meta, ";")
	if !ok || encoding != "base64" {
		return "", nil, fmt.Errorf("%w: payload must be base64", ErrInvalidImage)
	}
	if _, supported := extensions[mediaType]; !supported {
		return "", nil, fmt.Errorf("%w: unsupported type %s", ErrInvalidImage, mediaType)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s", ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("%w: empty image", ErrInvalidImage)
	}
	return mediaType, data, nil
}
