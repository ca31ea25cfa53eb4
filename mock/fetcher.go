// Package mock provides mock implementations of policyprism interfaces
// for testing.
package mock

import (
	"context"

	"github.com/fwojciec/policyprism"
)

var _ policyprism.PayloadFetcher = (*PayloadFetcher)(nil)

// PayloadFetcher is a mock implementation of policyprism.PayloadFetcher.
type PayloadFetcher struct {
	FetchPayloadFn func(ctx context.Context, url string) ([]byte, error)
}

func (f *PayloadFetcher) FetchPayload(ctx context.Context, url string) ([]byte, error) {
	return f.FetchPayloadFn(ctx, url)
}
