// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about registry fetches, cache operations, and mining runs.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRegistryHooks(&myRegistryHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Registry().OnFetchStart(ctx, "pypi", key)
//	// ... do fetching ...
//	observability.Registry().OnFetchComplete(ctx, "pypi", key, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// RegistryHooks receives events from the registry clients (PyPI, GitHub).
type RegistryHooks interface {
	OnFetchStart(ctx context.Context, registry, key string)
	OnFetchComplete(ctx context.Context, registry, key string, duration time.Duration, err error)
}

// CacheHooks receives events from the HTTP response cache.
type CacheHooks interface {
	OnHit(ctx context.Context, key string)
	OnMiss(ctx context.Context, key string)
	OnSet(ctx context.Context, key string, size int)
}

// MiningHooks receives events from the documentation-mining pipeline.
type MiningHooks interface {
	OnMineStart(ctx context.Context, pkg string)
	OnMineComplete(ctx context.Context, pkg string, examples int, duration time.Duration)
}

// noopRegistryHooks does nothing; the default when no hooks are registered.
type noopRegistryHooks struct{}

func (noopRegistryHooks) OnFetchStart(context.Context, string, string) {}
func (noopRegistryHooks) OnFetchComplete(context.Context, string, string, time.Duration, error) {}

type noopCacheHooks struct{}

func (noopCacheHooks) OnHit(context.Context, string)      {}
func (noopCacheHooks) OnMiss(context.Context, string)     {}
func (noopCacheHooks) OnSet(context.Context, string, int) {}

type noopMiningHooks struct{}

func (noopMiningHooks) OnMineStart(context.Context, string)                        {}
func (noopMiningHooks) OnMineComplete(context.Context, string, int, time.Duration) {}

var (
	mu            sync.RWMutex
	registryHooks RegistryHooks = noopRegistryHooks{}
	cacheHooks    CacheHooks    = noopCacheHooks{}
	miningHooks   MiningHooks   = noopMiningHooks{}
)

// SetRegistryHooks registers hooks for registry client events.
// Call at startup, before any fetches run. Passing nil restores the no-op.
func SetRegistryHooks(h RegistryHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = noopRegistryHooks{}
	}
	registryHooks = h
}

// SetCacheHooks registers hooks for cache events.
func SetCacheHooks(h CacheHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = noopCacheHooks{}
	}
	cacheHooks = h
}

// SetMiningHooks registers hooks for mining pipeline events.
func SetMiningHooks(h MiningHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = noopMiningHooks{}
	}
	miningHooks = h
}

// Registry returns the registered registry hooks (never nil).
func Registry() RegistryHooks {
	mu.RLock()
	defer mu.RUnlock()
	return registryHooks
}

// Cache returns the registered cache hooks (never nil).
func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return cacheHooks
}

// Mining returns the registered mining hooks (never nil).
func Mining() MiningHooks {
	mu.RLock()
	defer mu.RUnlock()
	return miningHooks
}
