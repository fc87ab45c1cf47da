// Package cache stores computed walls so repeated requests for the same
// items skip the layout step.
//
// Layout is cheap, so the cache mostly matters for the HTTP API, where many
// clients poll the same wall. Entries hold placements only (item id, column,
// row, colour, rotation); callers attach the current item content on a hit.
// Keys are derived from everything that affects placement (ordered item ids,
// column count, palettes), so a cached wall is always identical to a freshly
// computed one.
//
// Three backends are provided:
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [RedisCache]: shared across server instances
//   - [NullCache]: caching disabled
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with expiration.
type Cache interface {
	// Get returns the stored value and whether the key was present.
	// A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// DefaultTTL is how long a wall stays cached.
const DefaultTTL = 10 * time.Minute
