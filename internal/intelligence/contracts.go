package intelligence

import (
	"github.com/dgray/goalsmith/internal/domain"
	"github.com/dgray/goalsmith/internal/validate"
)

// GoalInput identifies the goal a suggestion request is about.
type GoalInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SpecificAdvice holds suggestions for sharpening the Specific criterion.
type SpecificAdvice struct {
	Suggestions []string `json:"suggestions"`
	Questions   []string `json:"questions"`
	Examples    []string `json:"examples"`
}

// MetricSuggestion proposes one way to quantify progress.
type MetricSuggestion struct {
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Target    string `json:"target"`
	Frequency string `json:"frequency"`
}

// MeasurableAdvice holds suggestions for the Measurable criterion, including
// concrete metric proposals.
type MeasurableAdvice struct {
	Suggestions []string           `json:"suggestions"`
	Questions   []string           `json:"questions"`
	Examples    []string           `json:"examples"`
	Metrics     []MetricSuggestion `json:"metrics"`
}

// AchievableAdvice holds suggestions for the Achievable criterion.
type AchievableAdvice struct {
	Suggestions    []string `json:"suggestions"`
	Questions      []string `json:"questions"`
	Considerations []string `json:"considerations"`
	Resources      []string `json:"resources"`
}

// RelevantAdvice holds suggestions for the Relevant criterion.
type RelevantAdvice struct {
	Suggestions    []string `json:"suggestions"`
	Questions      []string `json:"questions"`
	AlignmentAreas []string `json:"alignmentAreas"`
	Benefits       []string `json:"benefits"`
}

// MilestoneSuggestion proposes one checkpoint on the way to the goal.
type MilestoneSuggestion struct {
	Title       string `json:"title"`
	Timeframe   string `json:"timeframe"`
	Description string `json:"description"`
}

// TimeBoundAdvice holds suggestions for the Time-bound criterion, including
// milestone proposals.
type TimeBoundAdvice struct {
	Suggestions []string              `json:"suggestions"`
	Questions   []string              `json:"questions"`
	Timeframes  []string              `json:"timeframes"`
	Milestones  []MilestoneSuggestion `json:"milestones"`
}

// CriteriaSuggestions groups advice for all five SMART criteria.
type CriteriaSuggestions struct {
	Specific   SpecificAdvice   `json:"specific"`
	Measurable MeasurableAdvice `json:"measurable"`
	Achievable AchievableAdvice `json:"achievable"`
	Relevant   RelevantAdvice   `json:"relevant"`
	TimeBound  TimeBoundAdvice  `json:"timeBound"`
}

// Normalize fills nil slices with empty ones so every advice section is
// present in rendered output even when the model omitted it.
func (c *CriteriaSuggestions) Normalize() {
	fill := func(s *[]string) {
		if *s == nil {
			*s = []string{}
		}
	}
	fill(&c.Specific.Suggestions)
	fill(&c.Specific.Questions)
	fill(&c.Specific.Examples)
	fill(&c.Measurable.Suggestions)
	fill(&c.Measurable.Questions)
	fill(&c.Measurable.Examples)
	fill(&c.Achievable.Suggestions)
	fill(&c.Achievable.Questions)
	fill(&c.Achievable.Considerations)
	fill(&c.Achievable.Resources)
	fill(&c.Relevant.Suggestions)
	fill(&c.Relevant.Questions)
	fill(&c.Relevant.AlignmentAreas)
	fill(&c.Relevant.Benefits)
	fill(&c.TimeBound.Suggestions)
	fill(&c.TimeBound.Questions)
	fill(&c.TimeBound.Timeframes)
	if c.Measurable.Metrics == nil {
		c.Measurable.Metrics = []MetricSuggestion{}
	}
	if c.TimeBound.Milestones == nil {
		c.TimeBound.Milestones = []MilestoneSuggestion{}
	}
}

// RefineResult is the outcome of a goal refinement pass. Source records
// whether the result came from the model or the local rule engine.
type RefineResult struct {
	Goal            domain.Goal `json:"goal"`
	Recommendations []string    `json:"recommendations"`
	Source          string      `json:"source"`
}

const (
	SourceModel = "model"
	SourceLocal = "local"
)

// GoalPlan is the combined result of the goal-creation workflow: the assembled
// goal, the underlying analysis, criteria advice, and an initial validation.
type GoalPlan struct {
	Goal       domain.Goal           `json:"goal"`
	Report     domain.AnalysisReport `json:"report"`
	Criteria   *CriteriaSuggestions  `json:"criteria"`
	Validation validate.Result       `json:"validation"`
	NextSteps  []string              `json:"next_steps"`
}
