package analyze

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fwojciec/policyprism"
	"golang.org/x/sync/errgroup"
)

// Batch analyzes a set of document URLs concurrently while respecting
// per-domain rate limits.
type Batch struct {
	Analyzer    policyprism.Analyzer
	RateLimiter policyprism.DomainLimiter
	Concurrency int
}

// Result holds the outcome of a batch run.
type Result struct {
	Reports []*policyprism.Report
	Failed  int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

type batchResult struct {
	position int
	url      string
	report   *policyprism.Report
	err      error
}

// AnalyzeAll runs the analyzer over every URL and returns the reports in
// input order. Failed URLs leave a nil slot in Reports and are counted in
// Failed. The progress callback, if provided, receives events as the run
// proceeds.
func (b *Batch) AnalyzeAll(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	if len(urls) == 0 {
		return &Result{}, nil
	}

	emit := func(event ProgressEvent) {
		if progress != nil {
			progress(event)
		}
	}

	total := len(urls)
	emit(ProgressEvent{Type: ProgressStarted, Total: total})

	// Workers send into a channel sized for every URL so none of them
	// blocks on the consumer below.
	resultCh := make(chan batchResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency())
	go func() {
		defer close(resultCh)
		for i, u := range urls {
			i, u := i, u
			g.Go(func() error {
				resultCh <- b.analyzeOne(gctx, i, u)
				return nil
			})
		}
		_ = g.Wait()
	}()

	res := &Result{Reports: make([]*policyprism.Report, total)}
	completed := 0
	for r := range resultCh {
		completed++
		res.Reports[r.position] = r.report

		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			URL:       r.url,
		}
		if r.err != nil {
			res.Failed++
			event.Type = ProgressFailed
			event.Error = r.err
		}
		emit(event)
	}

	emit(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return res, nil
}

func (b *Batch) concurrency() int {
	if b.Concurrency > 0 {
		return b.Concurrency
	}
	return 4
}

// analyzeOne waits on the domain rate limiter, then runs the analyzer.
func (b *Batch) analyzeOne(ctx context.Context, position int, rawURL string) batchResult {
	result := batchResult{position: position, url: rawURL}

	if b.RateLimiter != nil {
		parsed, err := url.Parse(rawURL)
		if err != nil {
			result.err = fmt.Errorf("parse URL: %w", err)
			return result
		}
		if err := b.RateLimiter.Wait(ctx, parsed.Hostname()); err != nil {
			result.err = err
			return result
		}
	}

	result.report, result.err = b.Analyzer.Analyze(ctx, rawURL)
	return result
}
