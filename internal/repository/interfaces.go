package repository

import (
	"context"
	"errors"

	"github.com/dgray/goalsmith/internal/domain"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// ErrAmbiguousID is returned when a short ID prefix matches more than one record.
var ErrAmbiguousID = errors.New("ambiguous id prefix")

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	// GetByPrefix resolves a short display ID (a unique id prefix).
	GetByPrefix(ctx context.Context, prefix string) (*domain.Goal, error)
	// List returns goals ordered by creation time. An empty status matches all.
	List(ctx context.Context, status domain.GoalStatus) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, id string) error
}

type AnalysisRepo interface {
	Create(ctx context.Context, a *domain.AnalysisRecord) error
	GetByID(ctx context.Context, id string) (*domain.AnalysisRecord, error)
	ListByGoal(ctx context.Context, goalID string) ([]*domain.AnalysisRecord, error)
	// ListRecent returns the newest analyses first, at most limit rows.
	ListRecent(ctx context.Context, limit int) ([]*domain.AnalysisRecord, error)
	Delete(ctx context.Context, id string) error
}
