// cache/cache.go

// Package cache holds the key-value cache abstraction the services do their
// cache-aside reads and invalidations through, the key scheme that names
// entries, and the typed codecs that serialize records into them. The cache
// is advisory: the persistent store stays the system of record and every
// entry carries a finite TTL.
package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrMiss means the key is absent. Callers fall through to the source
	// of truth.
	ErrMiss = errors.New("cache miss")
	// ErrUnavailable means the cache store could not be reached in time.
	// Never fatal: the caller degrades to direct repository access.
	ErrUnavailable = errors.New("cache unavailable")
	// ErrCorrupt means a stored payload could not be decoded. Treated
	// exactly like a miss by callers; the entry will be overwritten.
	ErrCorrupt = errors.New("cache entry corrupt")
)

// KeyValueCache is the contract the cache-aside services require of a
// key-value store. Implementations must make Delete idempotent and
// DeleteMatching safe to call with zero matches.
type KeyValueCache interface {
	// Exists reports whether a key is present. Missing keys are not an error.
	Exists(ctx context.Context, key string) (bool, error)

	// Get returns the payload stored under key, or ErrMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites key unconditionally. A zero ttl means the entry
	// persists until explicit deletion.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(ctx context.Context, keys ...string) error

	// DeleteMatching removes every key matching a glob pattern. Used only
	// for coarse invalidation sweeps over paginated views.
	DeleteMatching(ctx context.Context, pattern string) error

	// Ping verifies connectivity with the backing store.
	Ping(ctx context.Context) error

	Close() error
}
