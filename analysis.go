package policyprism

import (
	"context"
	"time"
)

// Analysis is one archived extraction run.
type Analysis struct {
	ID        string    `json:"id"`
	SourceURL string    `json:"sourceUrl"`
	Report    *Report   `json:"report"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the analysis contains invalid fields.
func (a *Analysis) Validate() error {
	if a.SourceURL == "" {
		return Errorf(EINVALID, "analysis source URL required")
	}
	if a.Report == nil {
		return Errorf(EINVALID, "analysis report required")
	}
	return nil
}

// AnalysisService archives extraction reports for later review.
type AnalysisService interface {
	// CreateAnalysis archives a new analysis.
	CreateAnalysis(ctx context.Context, analysis *Analysis) error

	// FindAnalysisByID retrieves an analysis by ID.
	// Returns ENOTFOUND if the analysis does not exist.
	FindAnalysisByID(ctx context.Context, id string) (*Analysis, error)

	// FindAnalyses retrieves analyses matching the filter, newest first.
	FindAnalyses(ctx context.Context, filter AnalysisFilter) ([]*Analysis, error)

	// DeleteAnalysis permanently removes an analysis.
	// Returns ENOTFOUND if the analysis does not exist.
	DeleteAnalysis(ctx context.Context, id string) error
}

// AnalysisFilter represents a filter for FindAnalyses.
type AnalysisFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
