package mock

import (
	"context"

	"github.com/fwojciec/legaldoc"
)

var _ legaldoc.AnalysisService = (*AnalysisService)(nil)

// AnalysisService is a mock implementation of legaldoc.AnalysisService.
type AnalysisService struct {
	SaveAnalysisFn         func(ctx context.Context, a *legaldoc.Analysis) error
	FindAnalysisByDomainFn func(ctx context.Context, domain string) (*legaldoc.Analysis, error)
	FindAnalysesFn         func(ctx context.Context, filter legaldoc.AnalysisFilter) ([]*legaldoc.Analysis, error)
	DeleteAnalysisFn       func(ctx context.Context, domain string) error
}

func (s *AnalysisService) SaveAnalysis(ctx context.Context, a *legaldoc.Analysis) error {
	return s.SaveAnalysisFn(ctx, a)
}

func (s *AnalysisService) FindAnalysisByDomain(ctx context.Context, domain string) (*legaldoc.Analysis, error) {
	return s.FindAnalysisByDomainFn(ctx, domain)
}

func (s *AnalysisService) FindAnalyses(ctx context.Context, filter legaldoc.AnalysisFilter) ([]*legaldoc.Analysis, error) {
	return s.FindAnalysesFn(ctx, filter)
}

func (s *AnalysisService) DeleteAnalysis(ctx context.Context, domain string) error {
	return s.DeleteAnalysisFn(ctx, domain)
}
