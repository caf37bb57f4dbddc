package storage

import (
	"context"
	"io"
	"time"
)

// ObjectStorage is the contract against the hosted object store. Upload
// returns the object path it wrote; SignedURL issues a time-limited,
// pre-authorized download link for a stored object.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error

	Upload(ctx context.Context, objectPath string, r io.Reader, size int64, contentType string) (string, error)

	Download(ctx context.Context, objectPath string) (io.ReadCloser, error)

	SignedURL(ctx context.Context, objectPath string, ttl time.Duration) (string, error)

	Delete(ctx context.Context, objectPath string) error
}
