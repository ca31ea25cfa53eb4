package mock

import (
	"context"

	"github.com/fwojciec/policyprism"
)

var _ policyprism.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of policyprism.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, url string) (*policyprism.Report, error)
}

func (a *Analyzer) Analyze(ctx context.Context, url string) (*policyprism.Report, error) {
	return a.AnalyzeFn(ctx, url)
}

var _ policyprism.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of policyprism.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.WaitFn(ctx, domain)
}
