package intelligence

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgray/goalsmith/internal/domain"
	"github.com/dgray/goalsmith/internal/extract"
)

var plannerNow = time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)

func newLocalPlanner() *Planner {
	analyzer := extract.NewAnalyzerWithClock(func() time.Time { return plannerNow })
	criteria := NewCriteriaService(nil, analyzer)
	return NewPlannerWithClock(analyzer, criteria, nil, func() time.Time { return plannerNow })
}

func TestPlanner_LocalPlan(t *testing.T) {
	p := newLocalPlanner()

	plan := p.Plan(context.Background(), "I want to lose 15 pounds in 3 months by running three times a week")

	require.NotNil(t, plan)
	assert.Equal(t, "I want to lose 15 pounds in 3 months by running th...", plan.Goal.Title)
	assert.NotEmpty(t, plan.Goal.ID)
	assert.Equal(t, domain.DomainFitness, plan.Goal.Domain)
	assert.Equal(t, domain.GoalDraft, plan.Goal.Status)
	assert.Equal(t, plannerNow, plan.Goal.CreatedAt)
	assert.Contains(t, plan.Goal.Measurable, "weight_target")
	// "in 3 months" resolves to a concrete end date 90 days out.
	assert.Equal(t, "Complete by 2026-06-16", plan.Goal.TimeBound)
	require.NotNil(t, plan.Criteria)
	assert.NotEmpty(t, plan.Criteria.Specific.Suggestions)
	assert.NotEmpty(t, plan.NextSteps)
}

func TestPlanner_TitleFromFirstSentence(t *testing.T) {
	p := newLocalPlanner()

	plan := p.Plan(context.Background(), "learn to play guitar. I have wanted this for years and finally have time.")

	assert.Equal(t, "Learn to play guitar", plan.Goal.Title)
}

func TestPlanner_EmptyDescription(t *testing.T) {
	p := newLocalPlanner()

	plan := p.Plan(context.Background(), "")

	require.NotNil(t, plan)
	assert.Equal(t, "Untitled Goal", plan.Goal.Title)
	assert.Equal(t, domain.DomainProjects, plan.Goal.Domain)
	assert.False(t, plan.Validation.IsValid)
}

func TestPlanner_ModelUpgradesDraft(t *testing.T) {
	modelJSON := `{
		"title": "Complete a marathon",
		"specific": "Finish the autumn marathon",
		"milestones": [
			{"title": "Run 30k", "description": "Longest training run", "dueDate": "2026-08-01"}
		]
	}`
	srv := httptest.NewServer(ollamaHandler(t, modelJSON))
	defer srv.Close()

	analyzer := extract.NewAnalyzerWithClock(func() time.Time { return plannerNow })
	client := newTestClient(srv.URL)
	criteria := NewCriteriaService(client, analyzer)
	p := NewPlannerWithClock(analyzer, criteria, client, func() time.Time { return plannerNow })

	plan := p.Plan(context.Background(), "I want to run a marathon this year")

	require.NotNil(t, plan)
	assert.Equal(t, "Complete a marathon", plan.Goal.Title)
	assert.Equal(t, "Finish the autumn marathon", plan.Goal.Specific)
	require.Len(t, plan.Goal.Milestones, 1)
	assert.Equal(t, "Run 30k", plan.Goal.Milestones[0].Title)
	require.NotNil(t, plan.Goal.Milestones[0].DueDate)
	assert.Equal(t, "2026-08-01", plan.Goal.Milestones[0].DueDate.Format("2006-01-02"))
}

func TestPlanner_ModelDownStillPlans(t *testing.T) {
	analyzer := extract.NewAnalyzerWithClock(func() time.Time { return plannerNow })
	client := newTestClient("http://127.0.0.1:1")
	criteria := NewCriteriaService(client, analyzer)
	p := NewPlannerWithClock(analyzer, criteria, client, func() time.Time { return plannerNow })

	plan := p.Plan(context.Background(), "save $5000 for an emergency fund by December")

	require.NotNil(t, plan)
	assert.Equal(t, domain.DomainFinance, plan.Goal.Domain)
	require.NotNil(t, plan.Criteria)
}
