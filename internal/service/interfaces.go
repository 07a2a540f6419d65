package service

import (
	"context"

	"github.com/dgray/goalsmith/internal/domain"
	"github.com/dgray/goalsmith/internal/intelligence"
	"github.com/dgray/goalsmith/internal/validate"
)

// AnalysisService runs the extraction pipeline over free-text descriptions
// and keeps a history of past runs.
type AnalysisService interface {
	// Analyze runs the full pipeline and persists the result. goalID may be
	// empty for ad hoc analyses not attached to a stored goal.
	Analyze(ctx context.Context, description string, goalID string) (*domain.AnalysisRecord, error)
	GetByID(ctx context.Context, id string) (*domain.AnalysisRecord, error)
	ListByGoal(ctx context.Context, goalID string) ([]*domain.AnalysisRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.AnalysisRecord, error)
	Delete(ctx context.Context, id string) error
}

type GoalService interface {
	Create(ctx context.Context, g *domain.Goal) error
	// PlanFromDescription runs the goal-creation workflow and persists the
	// resulting goal together with its analysis in one transaction.
	PlanFromDescription(ctx context.Context, description string) (*intelligence.GoalPlan, error)
	// Get resolves a full ID or a unique short ID prefix.
	Get(ctx context.Context, idOrPrefix string) (*domain.Goal, error)
	List(ctx context.Context, status domain.GoalStatus) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, idOrPrefix string) error
	// Validate scores a stored goal against the SMART quality checks.
	Validate(ctx context.Context, idOrPrefix string) (*domain.Goal, validate.Result, error)
}
