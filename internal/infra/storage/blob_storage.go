// Package storage provides media object storage backed by blob buckets.
package storage

import (
	"context"
	"log/slog"
	"time"

	"capsule/config"
	"capsule/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the bucket drivers selected via the bucket URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobMediaStorage implements service.MediaStorage on top of a gocloud.dev bucket.
type blobMediaStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// noopMediaStorage returns the storage path unchanged. Used when no bucket
// is configured, so media URLs degrade to opaque paths instead of failing.
type noopMediaStorage struct{}

func (noopMediaStorage) SignedURL(_ context.Context, storagePath string, _ time.Duration) (string, error) {
	return storagePath, nil
}

// StorageParams holds dependencies for MediaStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMediaStorage opens the configured bucket and wires its lifecycle.
func NewMediaStorage(params StorageParams) (service.MediaStorage, error) {
	cfg := params.Config.MediaStorage
	logger := params.Logger

	if cfg == nil || cfg.BucketURL == "" {
		logger.Info("Media storage not configured, using pass-through paths")

		return noopMediaStorage{}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media bucket %s", cfg.BucketURL)
	}

	logger.Info("Media storage initialized",
		slog.String("bucket_url", cfg.BucketURL),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing media bucket")

			return bucket.Close()
		},
	})

	return &blobMediaStorage{bucket: bucket, logger: logger}, nil
}

// SignedURL returns a time-limited read URL for the object at storagePath.
func (s *blobMediaStorage) SignedURL(ctx context.Context, storagePath string, ttl time.Duration) (string, error) {
	url, err := s.bucket.SignedURL(ctx, storagePath, &blob.SignedURLOptions{
		Expiry: ttl,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign URL for %s", storagePath)
	}

	return url, nil
}

// Module provides the media storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMediaStorage),
)
