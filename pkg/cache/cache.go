// Package cache stores rendered output keyed by the content of the input tree.
//
// # Backends
//
//   - [FileCache]: one JSON entry file per key below a directory (CLI default)
//   - [RedisCache]: a shared Redis instance (HTTP server deployments)
//   - [NullCache]: stores nothing (caching disabled)
//
// # Keys
//
// A [Keyer] turns a tree hash plus the options that influence the output into a
// key. The tree hash is computed with [Hash] over the canonical JSON encoding
// of the tree, so two documents that differ only in position attributes or key
// order share cache entries.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether the key was present.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the backend.
	Close() error
}

// Clearer is implemented by backends that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Default entry lifetimes.
const (
	// TTLRender applies to rendered source text.
	TTLRender = 7 * 24 * time.Hour

	// TTLVisual applies to tree visualisations (DOT and SVG).
	TTLVisual = 24 * time.Hour
)
