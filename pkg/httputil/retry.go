package httputil

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// RetryableError marks a failure as transient. Registry clients wrap
// network errors and retryable HTTP statuses with this type so that
// [Retry] attempts the request again; anything else aborts immediately.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// RetryableStatus reports whether an HTTP status from an upstream registry
// is worth retrying. Server errors are transient by definition. GitHub
// signals primary rate limiting with 403 and secondary with 429; both
// clear after a short wait, so they retry too.
func RetryableStatus(code int) bool {
	return code == http.StatusForbidden ||
		code == http.StatusTooManyRequests ||
		code >= 500
}

// Retry executes fn up to attempts times with exponential backoff.
// Only errors wrapped with [RetryableError] are retried; other errors are
// returned immediately. The delay doubles after each failed attempt.
// Returns the last error if all attempts fail, or ctx.Err() if cancelled
// while waiting.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	attempts = max(attempts, 1)
	var lastErr error

	for i := 0; i < attempts; i++ {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !isRetryable(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

// RetryWithBackoff runs fn with the defaults used for registry fetches:
// 3 attempts starting at a 1 second delay. Long enough to ride out a
// rate-limit window, short enough that a dead registry fails fast.
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return Retry(ctx, 3, time.Second, fn)
}

func isRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}
