// Package pkg provides the core libraries for pydex documentation mining.
//
// # Overview
//
// Pydex fetches Python package metadata and mines the package documentation
// for usage examples. The pkg directory is organized into four main areas:
//
//  1. [readme] - The mining pipeline (normalize, extract, classify, rank)
//  2. [metadata] - Orchestration (fetch, choose doc source, mine)
//  3. [integrations] - External API clients (PyPI, GitHub)
//  4. [cache] - HTTP response cache backends (file, redis, null)
//
// # Architecture
//
// The typical data flow through pydex:
//
//	PyPI JSON API (long description)
//	         ↓ (sparse description: GitHub README fallback)
//	    [metadata] package (choose documentation source)
//	         ↓
//	    [readme] package (clean → extract → classify → dedupe → rank)
//	         ↓
//	    ranked []UsageExample (CLI, JSON/YAML, HTTP API)
//
// # Quick Start
//
// Fetch a package and mine its documentation:
//
//	import (
//	    "context"
//	    "github.com/pydex/pydex/pkg/cache"
//	    "github.com/pydex/pydex/pkg/metadata"
//	)
//
//	backend, _ := cache.NewFileCache("/tmp/pydex-cache")
//	svc := metadata.NewService(backend, metadata.Options{})
//	pkg, _ := svc.Fetch(context.Background(), "requests", "", false)
//	for _, e := range pkg.Examples {
//	    fmt.Println(e.Title, e.Language)
//	}
//
// Or run the pipeline over text you already have:
//
//	examples := readme.ExtractExamples(markdownText)
//
// # Main Packages
//
// [readme] - The documentation-mining core. Pure text processing, no
// network: markdown normalization, fenced-block and inline-span extraction,
// a rule-table classifier for usage examples, duplicate collapsing, and
// additive relevance ranking. Entry points never fail on malformed input.
//
// [metadata] - Orchestrates one fetch: PyPI metadata, the description
// usability decision, the GitHub README fallback, HTML-to-markdown
// conversion, and the mining run.
//
// [integrations] - Shared HTTP client with read-through caching and retries,
// plus the PyPI and GitHub API clients built on it.
//
// [cache] - Cache backends behind one interface: FileCache for the CLI,
// RedisCache for shared deployments, NullCache to disable caching, and a
// key-prefix Scoped wrapper for per-integration namespacing.
//
// [httputil] - Retry with exponential backoff and the RetryableError
// wrapper that marks transient failures.
//
// [observability] - Optional hooks for cache, registry, and mining events.
//
// [buildinfo] - Build-time version information injected via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/readme/...             # Specific package
//	go test -tags integration ./pkg/...  # Include integration tests
//
// [readme]: https://pkg.go.dev/github.com/pydex/pydex/pkg/readme
// [metadata]: https://pkg.go.dev/github.com/pydex/pydex/pkg/metadata
// [integrations]: https://pkg.go.dev/github.com/pydex/pydex/pkg/integrations
// [cache]: https://pkg.go.dev/github.com/pydex/pydex/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/pydex/pydex/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/pydex/pydex/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/pydex/pydex/pkg/buildinfo
package pkg
