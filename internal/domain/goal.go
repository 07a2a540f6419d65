package domain

import (
	"fmt"
	"time"
)

// Goal is a persisted SMART goal record. The five criterion fields hold
// free-text statements; Domain is filled from analysis when not set by hand.
type Goal struct {
	ID          string
	Title       string
	Description string
	Specific    string
	Measurable  string
	Achievable  string
	Relevant    string
	TimeBound   string
	Domain      GoalDomain
	Status      GoalStatus
	Milestones  []Milestone
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Milestone is an intermediate checkpoint on the way to a goal.
type Milestone struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
}

// Validate checks the minimal shape constraints for persisting a goal.
func (g *Goal) Validate() error {
	if g.Title == "" {
		return fmt.Errorf("goal title is required")
	}
	if g.Status != "" && !ValidGoalStatuses[string(g.Status)] {
		return fmt.Errorf("invalid goal status %q", g.Status)
	}
	return nil
}

// DisplayID returns a short identifier for listings.
func (g *Goal) DisplayID() string {
	if len(g.ID) >= 8 {
		return g.ID[:8]
	}
	return g.ID
}

// AnalysisRecord is a persisted analysis run. GoalID is empty for ad hoc
// analyses that were not attached to a stored goal.
type AnalysisRecord struct {
	ID                string
	GoalID            string
	Description       string
	Report            AnalysisReport
	OverallConfidence float64
	CreatedAt         time.Time
}
