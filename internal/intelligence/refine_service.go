package intelligence

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/dgray/goalsmith/internal/domain"
	"github.com/dgray/goalsmith/internal/llm"
	"github.com/dgray/goalsmith/internal/validate"
)

// RefineService improves an existing goal based on feedback. It never fails:
// when the model path is unavailable the goal is returned unchanged with
// locally derived recommendations.
type RefineService interface {
	Refine(ctx context.Context, goal domain.Goal, feedback string) *RefineResult
}

type refineService struct {
	client llm.LLMClient
}

// NewRefineService creates a RefineService. A nil client always produces
// local recommendations.
func NewRefineService(client llm.LLMClient) RefineService {
	return &refineService{client: client}
}

// refinedGoalPayload is the JSON shape the model returns for a refinement.
type refinedGoalPayload struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Specific        string   `json:"specific"`
	Measurable      string   `json:"measurable"`
	Achievable      string   `json:"achievable"`
	Relevant        string   `json:"relevant"`
	TimeBound       string   `json:"timeBound"`
	Recommendations []string `json:"recommendations"`
}

func (s *refineService) Refine(ctx context.Context, goal domain.Goal, feedback string) *RefineResult {
	if s.client == nil {
		return DeterministicRefine(goal)
	}

	prompt := struct {
		Goal     domain.Goal `json:"goal"`
		Feedback string      `json:"feedback"`
	}{Goal: goal, Feedback: feedback}

	promptJSON, err := json.MarshalIndent(prompt, "", "  ")
	if err != nil {
		return DeterministicRefine(goal)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskRefine,
		SystemPrompt: refineSystemPrompt,
		UserPrompt:   "Refine this goal based on the feedback:\n\n" + string(promptJSON),
	})
	if err != nil {
		return DeterministicRefine(goal)
	}

	payload, err := llm.ExtractJSON[refinedGoalPayload](resp.Text, validateRefined)
	if err != nil {
		return DeterministicRefine(goal)
	}

	refined := goal
	applyNonEmpty(&refined.Title, payload.Title)
	applyNonEmpty(&refined.Description, payload.Description)
	applyNonEmpty(&refined.Specific, payload.Specific)
	applyNonEmpty(&refined.Measurable, payload.Measurable)
	applyNonEmpty(&refined.Achievable, payload.Achievable)
	applyNonEmpty(&refined.Relevant, payload.Relevant)
	applyNonEmpty(&refined.TimeBound, payload.TimeBound)

	return &RefineResult{
		Goal:            refined,
		Recommendations: payload.Recommendations,
		Source:          SourceModel,
	}
}

// DeterministicRefine keeps the goal as-is and derives recommendations from
// the rule-based validator.
func DeterministicRefine(goal domain.Goal) *RefineResult {
	result := validate.Validate(goal)

	var recs []string
	recs = append(recs, result.CompletenessIssues...)
	recs = append(recs, result.SMARTIssues...)
	recs = append(recs, result.TimelineIssues...)
	recs = append(recs, result.MilestoneIssues...)
	recs = append(recs, validate.SuggestImprovements(goal)...)

	return &RefineResult{
		Goal:            goal,
		Recommendations: recs,
		Source:          SourceLocal,
	}
}

func validateRefined(p refinedGoalPayload) error {
	if strings.TrimSpace(p.Title) == "" && strings.TrimSpace(p.Specific) == "" {
		return errEmptyRefinement
	}
	return nil
}

func applyNonEmpty(dst *string, v string) {
	if strings.TrimSpace(v) != "" {
		*dst = v
	}
}
