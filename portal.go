package policyprism

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Collection caps applied by portal scrapers.
const (
	MaxPortalDocLinks = 12
	MaxPortalSnippets = 6
)

// highlightKeywordCap bounds the "Keyword focus" highlight.
const highlightKeywordCap = 5

// PortalContext is the page context gathered from a carrier portal by an
// external scraping collaborator.
type PortalContext struct {
	Carrier      string   `json:"carrier"`
	Hostname     string   `json:"hostname"`
	URL          string   `json:"url"`
	PageTitle    string   `json:"pageTitle"`
	DocLinks     []string `json:"docLinks"`
	TextSnippets []string `json:"textSnippets"`
}

// DocumentInfo describes a candidate document link found on a portal page.
type DocumentInfo struct {
	HRef string `json:"href"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// SummaryMeta records provenance for a portal summary.
type SummaryMeta struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Carrier     string    `json:"carrier"`
	PageTitle   string    `json:"pageTitle"`
}

// PortalSummary is the reviewer-facing synthesis of a portal page.
type PortalSummary struct {
	Headline   string         `json:"headline"`
	Blurb      string         `json:"blurb"`
	Highlights []string       `json:"highlights"`
	Exclusions []string       `json:"exclusions"`
	Actions    []string       `json:"actions"`
	Documents  []DocumentInfo `json:"documents"`
	Meta       SummaryMeta    `json:"metadata"`
}

// PortalScraper gathers document links and text snippets from portal HTML.
type PortalScraper interface {
	Collect(html string, pageURL string) (*PortalContext, error)
}

// Summarizer produces a portal summary from gathered context and any
// extracted document reports. The heuristic BuildPortalSummary is the
// default; implementations may back this with an LLM.
type Summarizer interface {
	Summarize(ctx context.Context, pctx *PortalContext, reports []*Report) (*PortalSummary, error)
}

// BuildPortalSummary derives a heuristic summary from portal context,
// honoring the enabled flag and carrier allow-list in config. A nil config
// behaves as the default configuration.
func BuildPortalSummary(config *Config, pctx *PortalContext, now time.Time) *PortalSummary {
	if config == nil {
		config = DefaultConfig()
	}
	if !config.Enabled || !config.AllowsCarrier(pctx.Carrier) {
		return disabledSummary(pctx, now)
	}

	summary := baselineSummary(pctx, now)

	if len(pctx.DocLinks) == 0 {
		summary.Highlights = append(summary.Highlights,
			"No supporting documents detected yet — upload policy PDFs or claim invoices.")
	} else {
		summary.Highlights = append(summary.Highlights,
			fmt.Sprintf("%d %s ready for ingestion.", len(pctx.DocLinks), pluralize("document", len(pctx.DocLinks))))
	}

	if len(pctx.TextSnippets) > 0 {
		keywords := HighlightKeywords(strings.Join(pctx.TextSnippets, " "), highlightKeywordCap)
		if len(keywords) > 0 {
			summary.Highlights = append(summary.Highlights,
				"Keyword focus: "+strings.Join(keywords, ", ")+".")
		}
	}

	summary.Exclusions = append(summary.Exclusions,
		"Automated exclusion detection pending entity extraction service.")
	summary.Actions = append(summary.Actions,
		"Trigger summarisation once the backend connector is live.",
		"Validate detected documents match the customer's active policy.")

	for _, href := range pctx.DocLinks {
		summary.Documents = append(summary.Documents, DocumentInfo{
			HRef: href,
			Name: FileName(href),
			Type: DescribeFile(href),
		})
	}

	return summary
}

func baselineSummary(pctx *PortalContext, now time.Time) *PortalSummary {
	carrierLabel := "Unknown carrier portal"
	carrierID := CarrierUnknown
	if carrier := FindCarrierByHostname(pctx.Hostname); carrier != nil {
		carrierLabel = carrier.Label
		carrierID = carrier.ID
	}

	blurb := "No rich text snippets captured yet. Upload a document or open a policy record."
	if len(pctx.TextSnippets) > 0 {
		blurb = fmt.Sprintf("Top portal excerpt: “%s”.", Truncate(pctx.TextSnippets[0], 220))
	}

	return &PortalSummary{
		Headline: carrierLabel + " insight preview",
		Blurb:    blurb,
		Meta: SummaryMeta{
			GeneratedAt: now,
			Carrier:     carrierID,
			PageTitle:   pctx.PageTitle,
		},
	}
}

func disabledSummary(pctx *PortalContext, now time.Time) *PortalSummary {
	return &PortalSummary{
		Headline: "Policy Prism disabled",
		Blurb:    "Enable analysis in the configuration to resume automated summaries.",
		Actions:  []string{"Re-enable analysis or extend the carrier allow-list."},
		Meta: SummaryMeta{
			GeneratedAt: now,
			Carrier:     pctx.Carrier,
			PageTitle:   pctx.PageTitle,
		},
	}
}

func pluralize(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
