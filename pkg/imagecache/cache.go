// Package imagecache provides byte caches for fetched image data.
//
// The image loader treats the cache as opaque storage: keys name a source
// URL plus a variant (original bytes or a downscaled thumbnail), values are
// raw encoded image bytes. Backends:
//   - file: on-disk cache for CLI and demo use
//   - memory: process-local cache for tests
//   - redis: shared cache for fleet deployments that prerender galleries
//   - null: caching disabled
package imagecache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for caching operations.
var (
	// ErrNotFound is returned when a requested item does not exist.
	ErrNotFound = errors.New("not found")
)

// Cache stores raw image bytes under string keys with optional expiry.
//
// Implementations must be safe for concurrent use; the image loader calls
// Get and Set from multiple prefetch goroutines at once.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found
	// and fresh; expired or missing entries are a miss, not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
