package policyprism

// Report is the final aggregated output of one extraction invocation.
// It is never mutated after construction; the caller owns subsequent use
// and serialization.
type Report struct {
	Fields          []Field           `json:"fields"`
	Highlights      []string          `json:"highlights"`
	Actions         []string          `json:"actions"`
	Warnings        []string          `json:"warnings"`
	TextSample      string            `json:"textSample"`
	Riders          []string          `json:"riders"`
	CoverageSignals []string          `json:"coverageSignals"`
	PageCount       int               `json:"pageCount"`
	ScannedPages    int               `json:"scannedPages"`
	ByteLength      int               `json:"byteLength"`
	ContentHash     string            `json:"contentHash,omitempty"`
	Metadata        map[string]string `json:"metadata"`
}

// Extras carries caller-supplied entries (e.g. document-readiness
// summaries) appended after the derived ones.
type Extras struct {
	Highlights []string
	Actions    []string
	Warnings   []string
}

// BuildReport merges extraction output, scan statistics, and metadata into
// a Report. Pure composition: derived entries keep their fixed order and
// extras are appended after them.
func BuildReport(ex *Extraction, stats Stats, metadata map[string]string, extras Extras) *Report {
	if metadata == nil {
		metadata = map[string]string{}
	}
	return &Report{
		Fields:          ex.Fields,
		Highlights:      appendExtra(ex.Highlights, extras.Highlights),
		Actions:         appendExtra(ex.Actions, extras.Actions),
		Warnings:        appendExtra(ex.Warnings, extras.Warnings),
		TextSample:      ex.TextSample,
		Riders:          ex.Riders,
		CoverageSignals: ex.CoverageSignals,
		PageCount:       stats.PageCount,
		ScannedPages:    stats.ScannedPages,
		ByteLength:      stats.ByteLength,
		ContentHash:     stats.ContentHash,
		Metadata:        metadata,
	}
}

// appendExtra appends extras to derived without aliasing either slice.
func appendExtra(derived, extra []string) []string {
	if len(extra) == 0 {
		return derived
	}
	out := make([]string, 0, len(derived)+len(extra))
	out = append(out, derived...)
	out = append(out, extra...)
	return out
}
