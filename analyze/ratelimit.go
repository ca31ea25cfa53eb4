package analyze

import (
	"context"
	"sync"

	"github.com/fwojciec/policyprism"
	"golang.org/x/time/rate"
)

var _ policyprism.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter enforces a per-host request rate using token buckets.
// Each carrier host gets its own limiter so requests to different hosts
// can proceed concurrently while each host stays within its budget.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each host with no bursting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain, or the
// context is canceled.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.limiterFor(domain).Wait(ctx)
}

func (d *DomainLimiter) limiterFor(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	return limiter
}
