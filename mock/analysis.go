package mock

import (
	"context"

	"github.com/fwojciec/policyprism"
)

var _ policyprism.AnalysisService = (*AnalysisService)(nil)

// AnalysisService is a mock implementation of policyprism.AnalysisService.
type AnalysisService struct {
	CreateAnalysisFn   func(ctx context.Context, analysis *policyprism.Analysis) error
	FindAnalysisByIDFn func(ctx context.Context, id string) (*policyprism.Analysis, error)
	FindAnalysesFn     func(ctx context.Context, filter policyprism.AnalysisFilter) ([]*policyprism.Analysis, error)
	DeleteAnalysisFn   func(ctx context.Context, id string) error
}

func (s *AnalysisService) CreateAnalysis(ctx context.Context, analysis *policyprism.Analysis) error {
	return s.CreateAnalysisFn(ctx, analysis)
}

func (s *AnalysisService) FindAnalysisByID(ctx context.Context, id string) (*policyprism.Analysis, error) {
	return s.FindAnalysisByIDFn(ctx, id)
}

func (s *AnalysisService) FindAnalyses(ctx context.Context, filter policyprism.AnalysisFilter) ([]*policyprism.Analysis, error) {
	return s.FindAnalysesFn(ctx, filter)
}

func (s *AnalysisService) DeleteAnalysis(ctx context.Context, id string) error {
	return s.DeleteAnalysisFn(ctx, id)
}
