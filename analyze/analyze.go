// Package analyze orchestrates the policy document extraction pipeline.
// It coordinates payload retrieval, resource guardrails, document decoding,
// page text extraction, and fact extraction into a single report.
package analyze

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/policyprism"
)

// Ensure Pipeline implements policyprism.Analyzer at compile time.
var _ policyprism.Analyzer = (*Pipeline)(nil)

// Pipeline extracts structured policy facts from a document reference.
// Each Analyze call operates on its own payload and produces its own
// report, so a single Pipeline is safe for concurrent use provided its
// Fetcher and Decoder are.
type Pipeline struct {
	Fetcher policyprism.PayloadFetcher
	Decoder policyprism.Decoder
	Limits  policyprism.Limits

	// Logger receives page-skip and metadata-miss events. Optional.
	Logger *slog.Logger
}

// Analyze retrieves the document at url, applies the resource guardrails,
// and runs the fact extraction engine over its pages. Returns either a
// complete report or an error, never a partial report.
func (p *Pipeline) Analyze(ctx context.Context, url string) (*policyprism.Report, error) {
	if url == "" {
		return nil, policyprism.Errorf(policyprism.EINVALID, "document URL required")
	}

	payload, err := p.Fetcher.FetchPayload(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	if err := p.Limits.CheckPayloadSize(len(payload)); err != nil {
		return nil, err
	}

	doc, err := p.Decoder.Decode(payload)
	if err != nil {
		if policyprism.ErrorCode(err) == policyprism.EDECODE {
			return nil, err
		}
		return nil, policyprism.Errorf(policyprism.EDECODE, "cannot decode document: %v", err)
	}

	pages, metadata, err := ScanPages(ctx, doc, p.Limits, p.logger())
	if err != nil {
		return nil, err
	}

	stats := policyprism.Stats{
		PageCount:    doc.PageCount(),
		ScannedPages: p.Limits.ScanDepth(doc.PageCount()),
		ByteLength:   len(payload),
		ContentHash:  contentHash(payload),
	}

	ex := policyprism.ExtractFacts(pages, metadata, stats, p.Limits)
	return policyprism.BuildReport(ex, stats, metadata, policyprism.Extras{}), nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// contentHash computes a hash of the payload using xxhash.
func contentHash(payload []byte) string {
	return fmt.Sprintf("%x", xxhash.Sum64(payload))
}
