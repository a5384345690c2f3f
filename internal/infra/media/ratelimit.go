package media

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter is a token bucket that keeps the media service from being flooded
// when many article pages are opened at once.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter allows up to burst calls immediately, then refills at
// requestsPerSecond.
//
//	limiter := NewRateLimiter(20, 40)  // 20 req/s with burst of 40
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Wait blocks until a token is available or the context is canceled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
