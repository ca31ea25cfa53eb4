// Package slog provides logging decorators for policyprism services
// using the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/policyprism"
)

// Ensure LoggingFetcher implements policyprism.PayloadFetcher.
var _ policyprism.PayloadFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a PayloadFetcher with debug logging.
type LoggingFetcher struct {
	next   policyprism.PayloadFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next policyprism.PayloadFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// FetchPayload delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) FetchPayload(ctx context.Context, url string) (payload []byte, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch payload",
			"url", url,
			"bytes", len(payload),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchPayload(ctx, url)
}
