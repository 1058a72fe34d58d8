// Package cache stores computed graph results by key.
//
// All backends implement [Cache]: a byte-oriented get/set/delete store
// with per-entry TTL. Backends:
//
//   - [NullCache]: caching disabled
//   - [FileCache]: one JSON file per entry, for CLI use
//   - [RedisCache]: shared cache for server deployments
//   - [MongoCache]: TTL-indexed documents for deployments already on MongoDB
//
// Keys come from a [Keyer]; [ScopedKeyer] namespaces them per deployment.
// A cache is an optimization only: a failing backend must never change a
// result, so callers treat errors as misses.
package cache

import (
	"context"
	"time"
)

// Cache is a key-value store for serialized results.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored bytes and true, or false on a miss.
	// Expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Default time-to-live per entry type. Graph results depend only on the
// position, so they live long; rendered DAGs depend on the renderer binary.
const (
	TTLGraph = 7 * 24 * time.Hour
	TTLDAG   = 24 * time.Hour
)
