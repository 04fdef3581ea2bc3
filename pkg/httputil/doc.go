// Package httputil provides HTTP utilities for the registry clients.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient failures:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return fetchPackage()
//	})
//
// Only errors wrapped in [RetryableError] trigger a retry; everything else
// (not-found responses, decode failures) is returned immediately. The delay
// doubles after each failed attempt, starting at 1 second with 3 attempts
// by default. [RetryableStatus] classifies upstream status codes, covering
// both registries' rate-limit responses alongside server errors.
//
// Response caching lives in [github.com/pydex/pydex/pkg/cache]; this package
// stays free of storage concerns.
package httputil
