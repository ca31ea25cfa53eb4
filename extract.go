package policyprism

import (
	"fmt"
	"regexp"
	"strings"
)

// CoverageVocabulary lists the coverage-type phrases tested by plain
// substring containment against the lowercased combined text. Declaration
// order determines output order.
var CoverageVocabulary = []string{
	"term life",
	"whole life",
	"universal life",
	"variable life",
	"critical illness",
	"disability income",
	"accidental death",
	"long term care",
	"waiver of premium",
}

// Reviewer-facing messages derived from extraction results.
const (
	ActionConfirmPolicyNumber  = "Policy number not detected automatically – confirm manually."
	ActionReviewCoverageAmount = "Coverage amount missing from auto extraction – review PDF."
	ActionCaptureDates         = "Effective or issue date not found – capture during intake."
	WarningNoStructuredFields  = "No structured fields extracted. PDF may be scanned or unstructured."
)

var (
	riderPattern  = regexp.MustCompile(`(?i)([a-z0-9 ,\-/]+?) rider`)
	riderTrailing = regexp.MustCompile(`[:\-]+$`)
)

// Field is one extracted label/value pair.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Extraction is the fact engine's raw output before report aggregation.
type Extraction struct {
	Fields          []Field
	Riders          []string
	CoverageSignals []string
	TextSample      string
	Highlights      []string
	Actions         []string
	Warnings        []string
}

// ExtractFacts runs the fixed rule set over the scanned pages and derives
// highlights, actions, and warnings. Absence of matches is data, never an
// error: a rule with no matching pattern simply contributes no field.
func ExtractFacts(pages []PageText, metadata map[string]string, stats Stats, limits Limits) *Extraction {
	combined := CombinePages(pages)
	searchable := strings.ToLower(combined)

	ex := &Extraction{}
	matched := make(map[string]bool)

	for _, rule := range DefaultRules() {
		value, ok := rule.FirstMatch(combined)
		if !ok {
			continue
		}
		matched[rule.Label] = true
		ex.Fields = append(ex.Fields, Field{Label: rule.Label, Value: value})
	}

	ex.Riders = extractRiders(combined)
	if len(ex.Riders) > 0 {
		ex.Fields = append(ex.Fields, Field{Label: LabelRiders, Value: strings.Join(ex.Riders, ", ")})
	}

	ex.CoverageSignals = extractCoverageSignals(searchable)
	if len(ex.CoverageSignals) > 0 {
		ex.Fields = append(ex.Fields, Field{Label: LabelCoverageSignals, Value: strings.Join(ex.CoverageSignals, ", ")})
	}

	if title := metadata["Title"]; title != "" {
		ex.Fields = append(ex.Fields, Field{Label: LabelDocumentTitle, Value: title})
	}

	ex.TextSample = textSample(pages, limits)

	if !matched[LabelPolicyNumber] {
		ex.Actions = append(ex.Actions, ActionConfirmPolicyNumber)
	}
	if !matched[LabelCoverageAmount] {
		ex.Actions = append(ex.Actions, ActionReviewCoverageAmount)
	}
	if !matched[LabelEffectiveDate] && !matched[LabelIssueDate] {
		ex.Actions = append(ex.Actions, ActionCaptureDates)
	}

	if len(ex.Fields) == 0 {
		ex.Warnings = append(ex.Warnings, WarningNoStructuredFields)
	}

	ex.Highlights = append(ex.Highlights, fmt.Sprintf("Parsed %d of %d pages (%s).",
		stats.ScannedPages, stats.PageCount, FormatBytes(stats.ByteLength)))

	return ex
}

// extractRiders collects "<word sequence> rider" matches in order of first
// occurrence. Dedup is case-sensitive over the cleaned original-case string.
func extractRiders(combined string) []string {
	matches := riderPattern.FindAllStringSubmatch(combined, -1)
	if matches == nil {
		return nil
	}
	var riders []string
	seen := make(map[string]bool)
	for _, m := range matches {
		cleaned := strings.TrimSpace(riderTrailing.ReplaceAllString(m[1], ""))
		if cleaned == "" || seen[cleaned] {
			continue
		}
		seen[cleaned] = true
		riders = append(riders, cleaned)
	}
	return riders
}

// extractCoverageSignals tests the coverage vocabulary against the
// lowercased combined text using substring containment, preserving
// vocabulary declaration order.
func extractCoverageSignals(searchable string) []string {
	var signals []string
	for _, keyword := range CoverageVocabulary {
		if strings.Contains(searchable, keyword) {
			signals = append(signals, keyword)
		}
	}
	return signals
}

// textSample returns the first scanned page's text truncated to the sample
// length and re-normalized. Independent of which fields matched.
func textSample(pages []PageText, limits Limits) string {
	if len(pages) == 0 {
		return ""
	}
	max := limits.SampleLength
	if max <= 0 {
		max = DefaultSampleLength
	}
	sample := pages[0].Text
	if runes := []rune(sample); len(runes) > max {
		sample = string(runes[:max])
	}
	return NormalizeWhitespace(sample)
}
