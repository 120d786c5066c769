package service

import (
	"context"
	"time"
)

// MediaStorage resolves stored media objects into client-fetchable URLs.
type MediaStorage interface {
	// SignedURL returns a time-limited read URL for the object at the
	// given storage path.
	SignedURL(ctx context.Context, storagePath string, ttl time.Duration) (string, error)
}
