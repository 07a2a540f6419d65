package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/dgray/goalsmith/internal/domain"
)

// Goal options
type GoalOption func(*domain.Goal)

func WithGoalStatus(s domain.GoalStatus) GoalOption {
	return func(g *domain.Goal) {
		g.Status = s
	}
}

func WithGoalDomain(d domain.GoalDomain) GoalOption {
	return func(g *domain.Goal) {
		g.Domain = d
	}
}

func WithDescription(desc string) GoalOption {
	return func(g *domain.Goal) {
		g.Description = desc
	}
}

func WithMilestones(ms ...domain.Milestone) GoalOption {
	return func(g *domain.Goal) {
		g.Milestones = ms
	}
}

func WithGoalID(id string) GoalOption {
	return func(g *domain.Goal) {
		g.ID = id
	}
}

func NewTestGoal(title string, opts ...GoalOption) *domain.Goal {
	now := time.Now().UTC().Truncate(time.Second)
	g := &domain.Goal{
		ID:          uuid.New().String(),
		Title:       title,
		Description: "A test goal used by repository tests",
		Specific:    "Do the specific thing",
		Measurable:  "progress: 100 percent",
		Achievable:  "No blocking constraints identified",
		Relevant:    "Aligned with the projects domain",
		TimeBound:   "Complete within 90 days",
		Domain:      domain.DomainProjects,
		Status:      domain.GoalDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Analysis options
type AnalysisOption func(*domain.AnalysisRecord)

func WithAnalysisGoalID(goalID string) AnalysisOption {
	return func(a *domain.AnalysisRecord) {
		a.GoalID = goalID
	}
}

func WithConfidence(c float64) AnalysisOption {
	return func(a *domain.AnalysisRecord) {
		a.OverallConfidence = c
		a.Report.OverallConfidence = c
	}
}

func WithCreatedAt(t time.Time) AnalysisOption {
	return func(a *domain.AnalysisRecord) {
		a.CreatedAt = t
	}
}

func NewTestAnalysis(description string, opts ...AnalysisOption) *domain.AnalysisRecord {
	now := time.Now().UTC().Truncate(time.Second)
	a := &domain.AnalysisRecord{
		ID:          uuid.New().String(),
		Description: description,
		Report: domain.AnalysisReport{
			Description: description,
			Intent: domain.IntentResult{
				Domain:     domain.DomainProjects,
				Action:     "complete",
				Outcome:    description,
				Urgency:    domain.UrgencyMedium,
				Confidence: 0.5,
			},
			OverallConfidence: 0.5,
			AnalyzedAt:        now,
		},
		OverallConfidence: 0.5,
		CreatedAt:         now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
