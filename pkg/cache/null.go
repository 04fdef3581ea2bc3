package cache

import (
	"context"
	"time"
)

// NullCache drops everything and always misses, forcing every lookup to hit
// the registry. It backs `--no-cache` and the "none" backend setting, and
// keeps the fetch path uniform: callers always go through a Cache, and
// disabling caching is just a backend choice.
type NullCache struct{}

// NewNullCache creates a cache that stores nothing.
func NewNullCache() Cache {
	return NullCache{}
}

func (NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) { return nil, false, nil }

func (NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

func (NullCache) Delete(ctx context.Context, key string) error { return nil }

func (NullCache) Close() error { return nil }

var _ Cache = NullCache{}
