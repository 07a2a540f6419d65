package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dgray/goalsmith/internal/domain"
	"github.com/dgray/goalsmith/internal/extract"
	"github.com/dgray/goalsmith/internal/repository"
)

type analysisService struct {
	analyzer *extract.Analyzer
	analyses repository.AnalysisRepo
	observer UseCaseObserver
}

func NewAnalysisService(
	analyzer *extract.Analyzer,
	analyses repository.AnalysisRepo,
	observers ...UseCaseObserver,
) AnalysisService {
	return &analysisService{
		analyzer: analyzer,
		analyses: analyses,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *analysisService) Analyze(ctx context.Context, description string, goalID string) (record *domain.AnalysisRecord, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"goal_id": goalID}
	defer func() {
		if record != nil {
			fields["confidence"] = record.OverallConfidence
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "analyze",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	report := s.analyzer.Analyze(description)
	record = &domain.AnalysisRecord{
		ID:                uuid.New().String(),
		GoalID:            goalID,
		Description:       description,
		Report:            report,
		OverallConfidence: report.OverallConfidence,
		CreatedAt:         startedAt,
	}
	if err = s.analyses.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *analysisService) GetByID(ctx context.Context, id string) (*domain.AnalysisRecord, error) {
	return s.analyses.GetByID(ctx, id)
}

func (s *analysisService) ListByGoal(ctx context.Context, goalID string) ([]*domain.AnalysisRecord, error) {
	return s.analyses.ListByGoal(ctx, goalID)
}

func (s *analysisService) ListRecent(ctx context.Context, limit int) ([]*domain.AnalysisRecord, error) {
	return s.analyses.ListRecent(ctx, limit)
}

func (s *analysisService) Delete(ctx context.Context, id string) error {
	return s.analyses.Delete(ctx, id)
}
