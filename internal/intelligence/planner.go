package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/dgray/goalsmith/internal/domain"
	"github.com/dgray/goalsmith/internal/extract"
	"github.com/dgray/goalsmith/internal/llm"
	"github.com/dgray/goalsmith/internal/validate"
)

const maxTitleLen = 50

// Planner runs the goal-creation workflow: analyze the description, assemble
// a draft goal, gather criteria advice, validate. When a model client is
// present the draft goal is upgraded with model output; every step has a
// local path so Plan never fails.
type Planner struct {
	analyzer *extract.Analyzer
	criteria CriteriaService
	client   llm.LLMClient
	clock    func() time.Time
}

// NewPlanner creates a Planner. client may be nil for a fully local workflow.
func NewPlanner(analyzer *extract.Analyzer, criteria CriteriaService, client llm.LLMClient) *Planner {
	return &Planner{
		analyzer: analyzer,
		criteria: criteria,
		client:   client,
		clock:    time.Now,
	}
}

// NewPlannerWithClock is NewPlanner with an injected clock for tests.
func NewPlannerWithClock(analyzer *extract.Analyzer, criteria CriteriaService, client llm.LLMClient, clock func() time.Time) *Planner {
	p := NewPlanner(analyzer, criteria, client)
	p.clock = clock
	return p
}

// Plan turns a free-text description into a draft goal with analysis,
// criteria advice and an initial validation attached.
func (p *Planner) Plan(ctx context.Context, description string) *GoalPlan {
	report := p.analyzer.Analyze(description)
	goal := p.assembleGoal(description, report)

	if p.client != nil {
		p.upgradeGoal(ctx, &goal, description)
	}

	criteria := p.criteria.Suggest(ctx, GoalInput{
		Title:       goal.Title,
		Description: goal.Description,
	})

	return &GoalPlan{
		Goal:       goal,
		Report:     report,
		Criteria:   criteria,
		Validation: validate.Validate(goal),
		NextSteps: []string{
			"Review and refine SMART criteria",
			"Add specific milestones",
			"Begin tracking progress",
		},
	}
}

// assembleGoal builds a draft goal from the deterministic analysis alone.
func (p *Planner) assembleGoal(description string, report domain.AnalysisReport) domain.Goal {
	now := p.clock()

	goal := domain.Goal{
		ID:          uuid.NewString(),
		Title:       deriveTitle(description),
		Description: description,
		Specific:    strings.TrimSpace(report.Intent.Action + " " + report.Intent.Outcome),
		Measurable:  measurableStatement(report.Metrics),
		Achievable:  achievableStatement(report.Constraints),
		Relevant:    fmt.Sprintf("Aligned with the %s domain", report.Intent.Domain),
		TimeBound:   timeBoundStatement(report.Timeframe),
		Domain:      report.Intent.Domain,
		Status:      domain.GoalDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, m := range report.Timeframe.Milestones {
		goal.Milestones = append(goal.Milestones, domain.Milestone{
			Title:       m,
			Description: "Extracted from goal description",
			DueDate:     report.Timeframe.EndDate,
		})
	}

	return goal
}

// upgradeGoal replaces draft fields with model output where the model returns
// something usable. Failures leave the draft untouched.
func (p *Planner) upgradeGoal(ctx context.Context, goal *domain.Goal, description string) {
	resp, err := p.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskPlan,
		SystemPrompt: planSystemPrompt,
		UserPrompt:   "Create a SMART goal from this description:\n\n" + description,
	})
	if err != nil {
		return
	}

	type plannedMilestone struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		DueDate     string `json:"dueDate"`
	}
	type plannedGoal struct {
		Title       string             `json:"title"`
		Description string             `json:"description"`
		Specific    string             `json:"specific"`
		Measurable  string             `json:"measurable"`
		Achievable  string             `json:"achievable"`
		Relevant    string             `json:"relevant"`
		TimeBound   string             `json:"timeBound"`
		Milestones  []plannedMilestone `json:"milestones"`
	}

	payload, err := llm.ExtractJSON[plannedGoal](resp.Text, nil)
	if err != nil {
		return
	}

	applyNonEmpty(&goal.Title, payload.Title)
	applyNonEmpty(&goal.Specific, payload.Specific)
	applyNonEmpty(&goal.Measurable, payload.Measurable)
	applyNonEmpty(&goal.Achievable, payload.Achievable)
	applyNonEmpty(&goal.Relevant, payload.Relevant)
	applyNonEmpty(&goal.TimeBound, payload.TimeBound)

	if len(payload.Milestones) > 0 {
		goal.Milestones = goal.Milestones[:0]
		for _, m := range payload.Milestones {
			ms := domain.Milestone{Title: m.Title, Description: m.Description}
			if due, err := time.Parse("2006-01-02", m.DueDate); err == nil {
				ms.DueDate = &due
			}
			goal.Milestones = append(goal.Milestones, ms)
		}
	}
}

// deriveTitle takes the first sentence of the description, truncated to a
// listing-friendly length.
func deriveTitle(description string) string {
	title := strings.TrimSpace(description)
	if i := strings.IndexAny(title, ".\n"); i > 0 {
		title = title[:i]
	}
	if len(title) > maxTitleLen {
		title = strings.TrimSpace(title[:maxTitleLen]) + "..."
	}
	if title == "" {
		return "Untitled Goal"
	}
	r := []rune(title)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func measurableStatement(metrics domain.MetricsResult) string {
	if len(metrics.Metrics) == 0 {
		return "Needs specific metrics"
	}
	parts := make([]string, 0, len(metrics.Metrics))
	for _, m := range metrics.Metrics {
		parts = append(parts, fmt.Sprintf("%s: %s %s", m.Name, formatTarget(m.TargetValue), m.Unit))
	}
	return strings.Join(parts, "; ")
}

func achievableStatement(constraints domain.ConstraintsResult) string {
	if constraints.TotalCount == 0 {
		return "No blocking constraints identified"
	}
	texts := make([]string, 0, constraints.TotalCount)
	for _, c := range constraints.Constraints {
		texts = append(texts, c.Constraint)
	}
	return fmt.Sprintf("Account for %d constraint(s): %s",
		constraints.TotalCount, strings.Join(texts, "; "))
}

func timeBoundStatement(tf domain.TimeframeResult) string {
	if tf.EndDate != nil {
		return "Complete by " + tf.EndDate.Format("2006-01-02")
	}
	if days, ok := tf.Duration["days"]; ok && days > 0 {
		return fmt.Sprintf("Complete within %d days", days)
	}
	return "Timeline needs clarification"
}
