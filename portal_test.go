package policyprism_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/policyprism"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPortalSummary(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("known carrier with documents and snippets", func(t *testing.T) {
		t.Parallel()

		pctx := &policyprism.PortalContext{
			Carrier:   "metlife",
			Hostname:  "online.metlife.com",
			URL:       "https://online.metlife.com/policies",
			PageTitle: "My Policies",
			DocLinks: []string{
				"https://online.metlife.com/docs/policy.pdf",
				"https://online.metlife.com/docs/claims.xlsx",
			},
			TextSnippets: []string{
				"Your term life policy includes an accidental death rider and covers the full premium waiver benefit schedule.",
			},
		}

		summary := policyprism.BuildPortalSummary(nil, pctx, now)

		assert.Equal(t, "MetLife insight preview", summary.Headline)
		assert.True(t, strings.HasPrefix(summary.Blurb, "Top portal excerpt: “"), summary.Blurb)
		assert.Contains(t, summary.Highlights, "2 documents ready for ingestion.")

		var keywordFocus string
		for _, h := range summary.Highlights {
			if strings.HasPrefix(h, "Keyword focus: ") {
				keywordFocus = h
			}
		}
		require.NotEmpty(t, keywordFocus)
		assert.Contains(t, keywordFocus, "rider")

		require.Len(t, summary.Documents, 2)
		assert.Equal(t, "policy.pdf", summary.Documents[0].Name)
		assert.Equal(t, "Policy PDF", summary.Documents[0].Type)
		assert.Equal(t, "Spreadsheet", summary.Documents[1].Type)

		assert.Equal(t, now, summary.Meta.GeneratedAt)
		assert.Equal(t, "metlife", summary.Meta.Carrier)
		assert.Equal(t, "My Policies", summary.Meta.PageTitle)
	})

	t.Run("no documents", func(t *testing.T) {
		t.Parallel()

		pctx := &policyprism.PortalContext{
			Carrier:  "aia",
			Hostname: "www.aia.com.sg",
			URL:      "https://www.aia.com.sg/portal",
		}

		summary := policyprism.BuildPortalSummary(nil, pctx, now)

		assert.Contains(t, summary.Highlights,
			"No supporting documents detected yet — upload policy PDFs or claim invoices.")
		assert.Empty(t, summary.Documents)
		assert.Contains(t, summary.Blurb, "No rich text snippets captured yet")
	})

	t.Run("single document pluralization", func(t *testing.T) {
		t.Parallel()

		pctx := &policyprism.PortalContext{
			Carrier:  "sunlife",
			Hostname: "my.sunlife.com",
			URL:      "https://my.sunlife.com/portal",
			DocLinks: []string{"https://my.sunlife.com/policy.pdf"},
		}

		summary := policyprism.BuildPortalSummary(nil, pctx, now)

		assert.Contains(t, summary.Highlights, "1 document ready for ingestion.")
	})

	t.Run("unknown carrier headline", func(t *testing.T) {
		t.Parallel()

		pctx := &policyprism.PortalContext{
			Carrier:  policyprism.CarrierUnknown,
			Hostname: "portal.example.com",
			URL:      "https://portal.example.com",
		}

		summary := policyprism.BuildPortalSummary(nil, pctx, now)

		assert.Equal(t, "Unknown carrier portal insight preview", summary.Headline)
		assert.Equal(t, policyprism.CarrierUnknown, summary.Meta.Carrier)
	})

	t.Run("disabled config", func(t *testing.T) {
		t.Parallel()

		config := &policyprism.Config{Enabled: false}
		pctx := &policyprism.PortalContext{
			Carrier:  "metlife",
			Hostname: "online.metlife.com",
			URL:      "https://online.metlife.com",
		}

		summary := policyprism.BuildPortalSummary(config, pctx, now)

		assert.Equal(t, "Policy Prism disabled", summary.Headline)
		assert.Equal(t, []string{"Re-enable analysis or extend the carrier allow-list."}, summary.Actions)
	})

	t.Run("carrier outside allow-list", func(t *testing.T) {
		t.Parallel()

		config := &policyprism.Config{Enabled: true, Carriers: []string{"aia"}}
		pctx := &policyprism.PortalContext{
			Carrier:  "metlife",
			Hostname: "online.metlife.com",
			URL:      "https://online.metlife.com",
		}

		summary := policyprism.BuildPortalSummary(config, pctx, now)

		assert.Equal(t, "Policy Prism disabled", summary.Headline)
	})
}
