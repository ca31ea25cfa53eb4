package policyprism

import (
	"sort"
	"strings"
)

// baseStopWords are common English function words excluded from keyword
// ranking in every variant.
var baseStopWords = newStopSet(
	"the", "and", "for", "with", "from", "that", "this", "shall", "hereby",
	"will", "have", "within", "each", "into", "your", "their", "which",
)

// domainStopWords are domain-generic nouns additionally excluded from the
// quick-highlight variant, where they would crowd out informative tokens.
var domainStopWords = newStopSet("policy", "claim", "benefit", "life")

const minKeywordLength = 4

// Keywords frequency-ranks tokens from free-form text. Tokens shorter than
// four characters and common function words are dropped; ties are broken by
// first-encounter order. Returns the full ranked list.
func Keywords(text string) []string {
	return rankKeywords(text, nil)
}

// HighlightKeywords is the quick-highlight variant: it additionally drops
// domain-generic nouns and caps the returned list at limit (0 means no cap).
func HighlightKeywords(text string, limit int) []string {
	keywords := rankKeywords(text, domainStopWords)
	if limit > 0 && len(keywords) > limit {
		keywords = keywords[:limit]
	}
	return keywords
}

func rankKeywords(text string, extraStop map[string]struct{}) []string {
	tokens := tokenize(text)

	counts := make(map[string]int)
	var order []string
	for _, token := range tokens {
		if len(token) < minKeywordLength {
			continue
		}
		if _, ok := baseStopWords[token]; ok {
			continue
		}
		if _, ok := extraStop[token]; ok {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	// Stable sort over encounter order keeps ties in first-appearance order.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order
}

// tokenize lowercases the text, replaces everything outside [a-z0-9] and
// whitespace with a space, and splits on whitespace.
func tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}
	return strings.Fields(b.String())
}

func newStopSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
