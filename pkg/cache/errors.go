package cache

import "errors"

// Sentinel errors for caching operations.
var (
	// ErrCacheMiss is returned by helpers that treat a miss as an error.
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidEntry is returned when a stored entry cannot be decoded.
	// Backends treat such entries as misses and evict them.
	ErrInvalidEntry = errors.New("invalid cache entry")
)
