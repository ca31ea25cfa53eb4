package mock

import (
	"context"

	"github.com/fwojciec/policyprism"
)

var _ policyprism.PortalScraper = (*PortalScraper)(nil)

// PortalScraper is a mock implementation of policyprism.PortalScraper.
type PortalScraper struct {
	CollectFn func(html string, pageURL string) (*policyprism.PortalContext, error)
}

func (s *PortalScraper) Collect(html string, pageURL string) (*policyprism.PortalContext, error) {
	return s.CollectFn(html, pageURL)
}

var _ policyprism.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of policyprism.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, pctx *policyprism.PortalContext, reports []*policyprism.Report) (*policyprism.PortalSummary, error)
}

func (s *Summarizer) Summarize(ctx context.Context, pctx *policyprism.PortalContext, reports []*policyprism.Report) (*policyprism.PortalSummary, error) {
	return s.SummarizeFn(ctx, pctx, reports)
}
