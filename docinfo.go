package policyprism

import (
	"net/url"
	"strings"
)

// fileTypeLabels maps lowercase file extensions to reviewer-facing labels.
var fileTypeLabels = map[string]string{
	"pdf":  "Policy PDF",
	"doc":  "Word Doc",
	"docx": "Word Doc",
	"xls":  "Spreadsheet",
	"xlsx": "Spreadsheet",
	"csv":  "Data extract",
}

// FileName returns the last path segment of a document link, decoded.
// Falls back to the raw href when it cannot be parsed as a URL.
func FileName(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	parts := strings.Split(u.Path, "/")
	last := parts[len(parts)-1]
	if last == "" {
		return "document"
	}
	decoded, err := url.PathUnescape(last)
	if err != nil {
		return last
	}
	return decoded
}

// DescribeFile returns a display label for a document link based on its
// file extension.
func DescribeFile(href string) string {
	idx := strings.LastIndex(href, ".")
	if idx < 0 || idx == len(href)-1 {
		return "Document"
	}
	if label, ok := fileTypeLabels[strings.ToLower(href[idx+1:])]; ok {
		return label
	}
	return "Document"
}

// Truncate shortens a value to at most max characters, trimming trailing
// whitespace and appending an ellipsis when truncation occurs.
func Truncate(value string, max int) string {
	if value == "" {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return strings.TrimRight(string(runes[:max-1]), " ") + "…"
}
