// Package gemini provides a Google Gemini implementation of
// policyprism.Summarizer for generating carrier-aware portal summaries.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/policyprism"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Summarizer implements policyprism.Summarizer at compile time.
var _ policyprism.Summarizer = (*Summarizer)(nil)

// Summarizer implements policyprism.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(client *genai.Client) *Summarizer {
	return &Summarizer{client: client}
}

// Summarize generates a narrative summary of the portal context and any
// extracted policy reports. The carrier's prompt hints steer the model
// toward carrier-specific highlights, exclusions, and actions.
func (s *Summarizer) Summarize(ctx context.Context, pctx *policyprism.PortalContext, reports []*policyprism.Report) (*policyprism.PortalSummary, error) {
	if pctx == nil {
		return nil, policyprism.Errorf(policyprism.EINVALID, "portal context required")
	}
	if pctx.URL == "" {
		return nil, policyprism.Errorf(policyprism.EINVALID, "portal URL required")
	}

	prompt := BuildUserPrompt(pctx, reports)
	config := BuildConfig(pctx.Carrier)

	result, err := s.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, policyprism.Errorf(policyprism.EINTERNAL, "gemini returned nil result")
	}

	summary := &policyprism.PortalSummary{
		Headline: fmt.Sprintf("%s policy summary", policyprism.CarrierLabel(pctx.Carrier)),
		Blurb:    result.Text(),
	}
	for _, href := range pctx.DocLinks {
		summary.Documents = append(summary.Documents, policyprism.DocumentInfo{
			HRef: href,
			Name: policyprism.FileName(href),
			Type: policyprism.DescribeFile(href),
		})
	}
	summary.Meta.GeneratedAt = time.Now().UTC()
	summary.Meta.Carrier = pctx.Carrier
	summary.Meta.PageTitle = pctx.PageTitle

	return summary, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls,
// seeded with the carrier's prompt hints when the carrier is known.
func BuildConfig(carrierID string) *genai.GenerateContentConfig {
	temp := float32(0.4)

	var sb strings.Builder
	sb.WriteString("You are an insurance policy analyst summarising a customer's policy portal page. ")
	sb.WriteString("Base your summary only on the portal content and extracted policy facts provided. ")
	sb.WriteString("If a detail is not present, say so rather than guessing.")

	if carrier, ok := policyprism.FindCarrierByID(carrierID); ok {
		fmt.Fprintf(&sb, "\n\nCarrier guidance for %s:\n", carrier.Label)
		fmt.Fprintf(&sb, "- Highlights: %s\n", carrier.Prompts.Highlights)
		fmt.Fprintf(&sb, "- Exclusions: %s\n", carrier.Prompts.Exclusions)
		fmt.Fprintf(&sb, "- Actions: %s\n", carrier.Prompts.Actions)
	}

	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: sb.String(),
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the portal context
// and extracted policy reports.
func BuildUserPrompt(pctx *policyprism.PortalContext, reports []*policyprism.Report) string {
	var sb strings.Builder

	sb.WriteString("<portal>\n")
	fmt.Fprintf(&sb, "<url>%s</url>\n", pctx.URL)
	fmt.Fprintf(&sb, "<title>%s</title>\n", pctx.PageTitle)
	fmt.Fprintf(&sb, "<carrier>%s</carrier>\n", policyprism.CarrierLabel(pctx.Carrier))
	for _, href := range pctx.DocLinks {
		fmt.Fprintf(&sb, "<document name=%q type=%q>%s</document>\n",
			policyprism.FileName(href), policyprism.DescribeFile(href), href)
	}
	for _, snippet := range pctx.TextSnippets {
		fmt.Fprintf(&sb, "<snippet>%s</snippet>\n", snippet)
	}
	sb.WriteString("</portal>\n")

	if len(reports) > 0 {
		sb.WriteString("\n<reports>\n")
		for i, report := range reports {
			sb.WriteString("<report>\n")
			fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
			for _, field := range report.Fields {
				fmt.Fprintf(&sb, "<field label=%q>%s</field>\n", field.Label, field.Value)
			}
			for _, highlight := range report.Highlights {
				fmt.Fprintf(&sb, "<highlight>%s</highlight>\n", highlight)
			}
			for _, warning := range report.Warnings {
				fmt.Fprintf(&sb, "<warning>%s</warning>\n", warning)
			}
			sb.WriteString("</report>\n")
		}
		sb.WriteString("</reports>\n")
	}

	sb.WriteString("\nSummarise this policy portal for the customer in two short paragraphs.")
	return sb.String()
}
