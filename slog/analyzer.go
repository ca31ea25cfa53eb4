package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/policyprism"
)

// Ensure LoggingAnalyzer implements policyprism.Analyzer.
var _ policyprism.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with debug logging.
type LoggingAnalyzer struct {
	next   policyprism.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next policyprism.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the operation.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, url string) (report *policyprism.Report, err error) {
	defer func(begin time.Time) {
		fields := 0
		if report != nil {
			fields = len(report.Fields)
		}
		a.logger.Info("analyze document",
			"url", url,
			"fields", fields,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Analyze(ctx, url)
}
