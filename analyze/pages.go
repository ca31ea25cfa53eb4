package analyze

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/policyprism"
)

// ScanPages reads text from the document up to the configured scan depth.
// Pages that fail to extract are skipped with a debug log rather than
// failing the run; pages whose normalized text is empty are dropped.
// Metadata extraction errors degrade to an empty metadata map.
func ScanPages(ctx context.Context, doc policyprism.Document, limits policyprism.Limits, logger *slog.Logger) ([]policyprism.PageText, map[string]string, error) {
	depth := limits.ScanDepth(doc.PageCount())
	pages := make([]policyprism.PageText, 0, depth)

	for n := 1; n <= depth; n++ {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		fragments, err := doc.PageFragments(n)
		if err != nil {
			logger.Debug("page extraction failed", slog.Int("page", n), slog.Any("error", err))
			continue
		}

		text := policyprism.NormalizeWhitespace(strings.Join(fragments, " "))
		if text == "" {
			continue
		}
		pages = append(pages, policyprism.PageText{PageNumber: n, Text: text})
	}

	metadata, err := doc.Metadata()
	if err != nil {
		logger.Debug("metadata extraction failed", slog.Any("error", err))
		metadata = map[string]string{}
	}
	if metadata == nil {
		metadata = map[string]string{}
	}

	return pages, metadata, nil
}
