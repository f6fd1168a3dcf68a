package gemini

import (
	"context"

	"github.com/pwalczak/gloss"
	"golang.org/x/time/rate"
)

var _ gloss.Limiter = (*RateLimiter)(nil)

// RateLimiter throttles model calls with a token bucket. Burst is 1
// since the pipeline is strictly sequential.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter allowing rps calls per second.
func NewRateLimiter(rps float64) *RateLimiter {
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Wait blocks until the next call is allowed or the context is canceled.
func (l *RateLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
