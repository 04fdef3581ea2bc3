// Package cache provides pluggable response caching for the registry clients.
//
// A [Cache] stores opaque byte payloads under string keys with a per-entry
// TTL. Three backends are provided:
//
//   - [FileCache]: entries as JSON files under a local directory
//   - [RedisCache]: shared cache backed by a Redis server
//   - [NullCache]: no-op backend for disabling caching
//
// Keys should be namespaced per data source to avoid collisions; wrap any
// backend with [NewScoped] to get automatic prefixing:
//
//	pypi := cache.NewScoped(backend, "pypi:")
//	gh := cache.NewScoped(backend, "github:")
package cache

import (
	"context"
	"time"
)

// Cache is the backend interface for response caching.
//
// Get returns (data, true, nil) on a hit, (nil, false, nil) on a miss.
// Expired entries are treated as misses. A ttl of 0 in Set means the entry
// never expires.
//
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
