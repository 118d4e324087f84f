package checker

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer enforces the politeness delay: one unconditional pause before every
// outbound verification request, shared by all workers so the whole run
// never exceeds one request per delay interval.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a pacer that admits one request per delay. A
// non-positive delay disables pacing. The initial token is drained so the
// very first request waits like every other.
func NewPacer(delay time.Duration) *Pacer {
	if delay <= 0 {
		return &Pacer{}
	}
	limiter := rate.NewLimiter(rate.Every(delay), 1)
	limiter.Allow()
	return &Pacer{limiter: limiter}
}

// Wait blocks until the next request may proceed or the context is
// cancelled. Safe for concurrent use.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.limiter == nil {
		return ctx.Err()
	}
	return p.limiter.Wait(ctx)
}
