// Package goquery provides an HTML implementation of
// policyprism.PortalScraper for collecting document links and policy
// text snippets from carrier portal pages.
package goquery

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/policyprism"
)

// documentHrefPattern matches links whose path ends in a supported
// document extension.
var documentHrefPattern = regexp.MustCompile(`(?i)\.(pdf|docx?|xlsx?|csv)$`)

// Ensure Scraper implements policyprism.PortalScraper at compile time.
var _ policyprism.PortalScraper = (*Scraper)(nil)

// Scraper collects portal context from rendered carrier pages.
// The zero value is ready to use.
type Scraper struct{}

// NewScraper creates a new portal Scraper.
func NewScraper() *Scraper {
	return &Scraper{}
}

// Collect parses the page HTML and gathers the portal context: carrier
// identity, document links, and policy text snippets.
func (s *Scraper) Collect(html string, pageURL string) (*policyprism.PortalContext, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, policyprism.Errorf(policyprism.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, policyprism.Errorf(policyprism.EINVALID, "failed to parse HTML: %v", err)
	}

	hostname := base.Hostname()

	pctx := &policyprism.PortalContext{
		Carrier:      policyprism.DetectCarrierID(hostname),
		Hostname:     hostname,
		URL:          pageURL,
		PageTitle:    strings.TrimSpace(doc.Find("title").First().Text()),
		DocLinks:     collectDocLinks(doc, base),
		TextSnippets: collectSnippets(doc),
	}

	return pctx, nil
}

// collectDocLinks gathers anchors pointing at policy documents, resolved
// against the page URL and capped at MaxPortalDocLinks.
func collectDocLinks(doc *goquery.Document, base *url.URL) []string {
	var links []string

	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return true
		}

		ref, err := url.Parse(href)
		if err != nil {
			return true
		}
		resolved := base.ResolveReference(ref)
		if !documentHrefPattern.MatchString(resolved.Path) {
			return true
		}

		links = append(links, resolved.String())
		return len(links) < policyprism.MaxPortalDocLinks
	})

	return links
}

// collectSnippets gathers substantial paragraph and list-item text,
// capped at MaxPortalSnippets. Short fragments and navigation chrome
// are excluded by the length and word-count thresholds.
func collectSnippets(doc *goquery.Document) []string {
	var snippets []string

	doc.Find("p, li").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if utf8.RuneCountInString(text) <= 110 || len(strings.Fields(text)) <= 10 {
			return true
		}
		snippets = append(snippets, policyprism.NormalizeWhitespace(text))
		return len(snippets) < policyprism.MaxPortalSnippets
	})

	return snippets
}
