package policyprism

import "context"

// Default resource guardrails. Oversized payloads are rejected before any
// decoding work and page scanning stops at the scan depth to keep parsing
// responsive against arbitrary third-party documents.
const (
	DefaultMaxPayloadBytes = 15728640 // 15 MiB
	DefaultMaxScanPages    = 6
	DefaultSampleLength    = 600
)

// Limits bound resource consumption for a single extraction request.
// The zero value of each field means the corresponding default applies.
type Limits struct {
	MaxPayloadBytes int
	MaxScanPages    int
	SampleLength    int
}

// DefaultLimits returns Limits populated with the default guardrails.
func DefaultLimits() Limits {
	return Limits{
		MaxPayloadBytes: DefaultMaxPayloadBytes,
		MaxScanPages:    DefaultMaxScanPages,
		SampleLength:    DefaultSampleLength,
	}
}

// CheckPayloadSize returns ETOOLARGE if the payload exceeds the byte
// guardrail. It must run before decoding so oversized documents are
// rejected without parsing cost.
func (l Limits) CheckPayloadSize(byteLength int) error {
	max := l.MaxPayloadBytes
	if max <= 0 {
		max = DefaultMaxPayloadBytes
	}
	if byteLength > max {
		return Errorf(ETOOLARGE, "document of %s exceeds %s payload limit", FormatBytes(byteLength), FormatBytes(max))
	}
	return nil
}

// ScanDepth returns the number of pages actually scanned for a document
// with the given total page count.
func (l Limits) ScanDepth(pageCount int) int {
	max := l.MaxScanPages
	if max <= 0 {
		max = DefaultMaxScanPages
	}
	if pageCount < max {
		return pageCount
	}
	return max
}

// PageText is one scanned page's normalized text. Pages whose normalized
// text is empty are never emitted, so page numbers need not be contiguous.
type PageText struct {
	PageNumber int    `json:"pageNumber"`
	Text       string `json:"text"`
}

// Stats describes how much of a source document the pipeline consumed.
// Immutable once computed; carried through to the final report for display.
type Stats struct {
	PageCount    int    `json:"pageCount"`
	ScannedPages int    `json:"scannedPages"`
	ByteLength   int    `json:"byteLength"`
	ContentHash  string `json:"contentHash"`
}

// PayloadFetcher retrieves a document payload by reference.
// Implementations enforce the byte guardrail during retrieval so oversized
// bodies are abandoned without buffering them whole.
type PayloadFetcher interface {
	// FetchPayload retrieves the raw document bytes at the URL.
	// Returns ETOOLARGE if the payload exceeds the configured byte limit.
	FetchPayload(ctx context.Context, url string) ([]byte, error)
}

// Document is a decoded document handle with random access to pages
// 1..PageCount.
type Document interface {
	// PageCount returns the total number of pages in the source document.
	PageCount() int

	// PageFragments returns the page's raw text fragments in reading order.
	// A failure here is page-level: callers treat the page as empty rather
	// than aborting the extraction.
	PageFragments(pageNumber int) ([]string, error)

	// Metadata returns document-level metadata (e.g. Title), best effort.
	// Callers substitute an empty map when metadata retrieval fails.
	Metadata() (map[string]string, error)
}

// Decoder opens raw payload bytes as a Document.
// Implementations must be safe for concurrent use; any one-time engine
// setup happens at most once process-wide.
type Decoder interface {
	// Decode parses the payload. Returns EDECODE if the document cannot
	// be opened at all.
	Decode(data []byte) (Document, error)
}

// Analyzer extracts structured policy facts from a document reference.
// Callers receive either a complete Report or an error, never a partial
// report.
type Analyzer interface {
	Analyze(ctx context.Context, url string) (*Report, error)
}

// DomainLimiter rate-limits outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	Wait(ctx context.Context, domain string) error
}
