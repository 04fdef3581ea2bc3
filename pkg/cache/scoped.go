package cache

import (
	"context"
	"time"
)

// Scoped wraps a Cache with a key prefix so that different data sources
// share one backend without key collisions.
//
// Example:
//
//	pypi := cache.NewScoped(backend, "pypi:")
//	gh := cache.NewScoped(backend, "github:")
type Scoped struct {
	inner  Cache
	prefix string
}

// NewScoped creates a prefixed view of inner. Prefixes compose: wrapping an
// already-scoped cache prepends the new prefix to the existing one.
func NewScoped(inner Cache, prefix string) Cache {
	if s, ok := inner.(*Scoped); ok {
		return &Scoped{inner: s.inner, prefix: s.prefix + prefix}
	}
	return &Scoped{inner: inner, prefix: prefix}
}

// Get retrieves a value under the prefixed key.
func (s *Scoped) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.inner.Get(ctx, s.prefix+key)
}

// Set stores a value under the prefixed key.
func (s *Scoped) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return s.inner.Set(ctx, s.prefix+key, data, ttl)
}

// Delete removes the prefixed key.
func (s *Scoped) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, s.prefix+key)
}

// Close closes the underlying backend.
func (s *Scoped) Close() error { return s.inner.Close() }

// Ensure Scoped implements Cache.
var _ Cache = (*Scoped)(nil)
