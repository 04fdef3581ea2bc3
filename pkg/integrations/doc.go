// Package integrations provides HTTP clients for the upstream APIs pydex
// talks to.
//
// # Overview
//
// Each upstream has its own subpackage:
//
//   - [pypi]: Python Package Index (metadata + long description)
//   - [github]: GitHub API (README fallback, repository info)
//
// # Client Pattern
//
// Clients follow a consistent pattern:
//
//	client := pypi.NewClient(backend, 24*time.Hour)
//	pkg, err := client.FetchPackage(ctx, "fastapi", "", false)  // false = use cache
//
// Clients handle:
//   - HTTP requests with retry for transient failures
//   - Response caching through a [cache.Cache] backend
//   - API-specific parsing and normalization
//
// The [Client] type provides the shared HTTP plumbing used by both
// subpackages.
//
// [pypi]: github.com/pydex/pydex/pkg/integrations/pypi
// [github]: github.com/pydex/pydex/pkg/integrations/github
// [cache.Cache]: github.com/pydex/pydex/pkg/cache.Cache
package integrations
