package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dgray/goalsmith/internal/db"
	"github.com/dgray/goalsmith/internal/domain"
	"github.com/dgray/goalsmith/internal/intelligence"
	"github.com/dgray/goalsmith/internal/repository"
	"github.com/dgray/goalsmith/internal/validate"
)

type goalService struct {
	goals    repository.GoalRepo
	planner  *intelligence.Planner
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewGoalService(
	goals repository.GoalRepo,
	planner *intelligence.Planner,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) GoalService {
	return &goalService{
		goals:    goals,
		planner:  planner,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *goalService) Create(ctx context.Context, g *domain.Goal) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	g.CreatedAt = now
	g.UpdatedAt = now
	if g.Status == "" {
		g.Status = domain.GoalDraft
	}
	if g.Domain == "" {
		g.Domain = domain.DomainProjects
	}
	if err := g.Validate(); err != nil {
		return err
	}
	return s.goals.Create(ctx, g)
}

// PlanFromDescription persists the planned goal and its analysis atomically.
// A failure writing either record leaves the database untouched.
func (s *goalService) PlanFromDescription(ctx context.Context, description string) (plan *intelligence.GoalPlan, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		if plan != nil {
			fields["goal_id"] = plan.Goal.ID
			fields["score"] = plan.Validation.Score
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "plan-goal",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	plan = s.planner.Plan(ctx, description)

	record := &domain.AnalysisRecord{
		ID:                uuid.New().String(),
		GoalID:            plan.Goal.ID,
		Description:       description,
		Report:            plan.Report,
		OverallConfidence: plan.Report.OverallConfidence,
		CreatedAt:         startedAt,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txGoals := repository.NewSQLiteGoalRepo(tx)
		txAnalyses := repository.NewSQLiteAnalysisRepo(tx)

		if err := txGoals.Create(ctx, &plan.Goal); err != nil {
			return err
		}
		return txAnalyses.Create(ctx, record)
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *goalService) Get(ctx context.Context, idOrPrefix string) (*domain.Goal, error) {
	return s.goals.GetByPrefix(ctx, idOrPrefix)
}

func (s *goalService) List(ctx context.Context, status domain.GoalStatus) ([]*domain.Goal, error) {
	return s.goals.List(ctx, status)
}

func (s *goalService) Update(ctx context.Context, g *domain.Goal) error {
	if err := g.Validate(); err != nil {
		return err
	}
	g.UpdatedAt = time.Now().UTC()
	return s.goals.Update(ctx, g)
}

func (s *goalService) Delete(ctx context.Context, idOrPrefix string) error {
	g, err := s.goals.GetByPrefix(ctx, idOrPrefix)
	if err != nil {
		return err
	}
	return s.goals.Delete(ctx, g.ID)
}

func (s *goalService) Validate(ctx context.Context, idOrPrefix string) (*domain.Goal, validate.Result, error) {
	g, err := s.goals.GetByPrefix(ctx, idOrPrefix)
	if err != nil {
		return nil, validate.Result{}, err
	}
	return g, validate.Validate(*g), nil
}
