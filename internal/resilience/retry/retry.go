// Package retry re-runs outbound calls that failed for a transient reason,
// waiting a capped, exponentially growing delay between tries.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/samber/lo"
)

// Config describes how often and how patiently a call is retried.
type Config struct {
	// MaxAttempts counts every try, the first one included. Values below 1 mean 1.
	MaxAttempts int

	// BaseDelay is the wait before the second try; it doubles for each further try.
	BaseDelay time.Duration

	// MaxDelay caps a single wait. Zero means no cap.
	MaxDelay time.Duration

	// Jitter is the share of the wait (0..1) added at random.
	Jitter float64
}

// MediaLookupConfig is used for media service lookups.
// The lookup runs inside a user request, so waits stay short.
func MediaLookupConfig() Config {
	return Config{
		MaxAttempts: 2,
		BaseDelay:   100 * time.Millisecond,
		MaxDelay:    500 * time.Millisecond,
		Jitter:      0.1,
	}
}

// Delay returns the wait after the n-th failed try (n starts at 1), before jitter.
func (c Config) Delay(n int) time.Duration {
	d := c.BaseDelay
	for i := 1; i < n; i++ {
		if c.MaxDelay > 0 && d >= c.MaxDelay {
			break
		}
		d *= 2
	}
	if c.MaxDelay > 0 && d > c.MaxDelay {
		d = c.MaxDelay
	}
	return d
}

// Do calls fn until it succeeds, fails with an error IsRetryable rejects,
// or MaxAttempts is used up. Canceling ctx stops the wait between tries.
func Do[T any](ctx context.Context, cfg Config, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	attempts := max(cfg.MaxAttempts, 1)

	var err error
	for n := 1; ; n++ {
		var v T
		if v, err = fn(ctx); err == nil {
			return v, nil
		}
		if !IsRetryable(err) || n == attempts {
			break
		}

		wait := withJitter(cfg.Delay(n), cfg.Jitter)
		slog.DebugContext(ctx, "transient failure, retrying",
			slog.Int("attempt", n),
			slog.Int("max_attempts", attempts),
			slog.Duration("wait", wait),
			slog.Any("error", err))

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return zero, fmt.Errorf("retry aborted: %w", ctx.Err())
		}
	}

	if attempts > 1 && IsRetryable(err) {
		return zero, fmt.Errorf("gave up after %d attempts: %w", attempts, err)
	}
	return zero, err
}

// transientErrnos are socket errors that usually clear up on their own.
var transientErrnos = []error{
	syscall.ECONNREFUSED,
	syscall.ECONNRESET,
	syscall.ETIMEDOUT,
	syscall.ENETUNREACH,
}

// IsRetryable reports whether err is worth another try.
// Cancellation never is; network timeouts, transient socket errors and
// temporary HTTP statuses are.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	if lo.ContainsBy(transientErrnos, func(target error) bool { return errors.Is(err, target) }) {
		return true
	}

	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.Temporary()
}

// HTTPError is a non-2xx answer from a remote service.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Temporary reports whether the status may succeed on a later try (408, 429, 5xx).
func (e *HTTPError) Temporary() bool {
	switch {
	case e.StatusCode == http.StatusRequestTimeout, e.StatusCode == http.StatusTooManyRequests:
		return true
	default:
		return e.StatusCode >= 500 && e.StatusCode < 600
	}
}

func withJitter(d time.Duration, fraction float64) time.Duration {
	if fraction <= 0 || d <= 0 {
		return d
	}
	fraction = min(fraction, 1)
	// #nosec G404 -- jitter does not need a cryptographic source
	return d + time.Duration(rand.Float64()*fraction*float64(d))
}
