package policyprism

import (
	"strings"
	"unicode"
)

// NormalizeWhitespace collapses runs of whitespace (including newlines) to
// single spaces and trims leading/trailing whitespace.
func NormalizeWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(b.String())
}

// CombinePages joins scanned page texts with newline separators,
// preserving page order.
func CombinePages(pages []PageText) string {
	if len(pages) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pages))
	for _, page := range pages {
		parts = append(parts, page.Text)
	}
	return strings.Join(parts, "\n")
}
