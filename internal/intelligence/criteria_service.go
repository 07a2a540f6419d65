package intelligence

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/dgray/goalsmith/internal/extract"
	"github.com/dgray/goalsmith/internal/llm"
)

var (
	errEmptyCriteria   = errors.New("criteria advice is empty")
	errEmptyRefinement = errors.New("refinement output is empty")
)

// CriteriaService generates SMART criteria suggestions for a goal.
// It never fails: when the model is unavailable or returns garbage, advice is
// built locally from the extraction pipeline.
type CriteriaService interface {
	Suggest(ctx context.Context, input GoalInput) *CriteriaSuggestions
}

type criteriaService struct {
	client   llm.LLMClient
	analyzer *extract.Analyzer
}

// NewCriteriaService creates a CriteriaService. A nil client skips the model
// entirely and always produces local advice.
func NewCriteriaService(client llm.LLMClient, analyzer *extract.Analyzer) CriteriaService {
	return &criteriaService{client: client, analyzer: analyzer}
}

func (s *criteriaService) Suggest(ctx context.Context, input GoalInput) *CriteriaSuggestions {
	if s.client == nil {
		return s.localSuggest(input)
	}

	promptJSON, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return s.localSuggest(input)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskCriteria,
		SystemPrompt: criteriaSystemPrompt,
		UserPrompt:   "Generate SMART criteria suggestions for this goal:\n\n" + string(promptJSON),
	})
	if err != nil {
		return s.localSuggest(input)
	}

	suggestions, err := llm.ExtractJSON[CriteriaSuggestions](resp.Text, validateCriteria)
	if err != nil {
		return s.localSuggest(input)
	}

	suggestions.Normalize()
	return &suggestions
}

func (s *criteriaService) localSuggest(input GoalInput) *CriteriaSuggestions {
	report := s.analyzer.Analyze(combinedText(input))
	return DeterministicCriteria(input, report)
}

// validateCriteria rejects model output that has no usable advice at all.
func validateCriteria(c CriteriaSuggestions) error {
	total := len(c.Specific.Suggestions) + len(c.Measurable.Suggestions) +
		len(c.Achievable.Suggestions) + len(c.Relevant.Suggestions) +
		len(c.TimeBound.Suggestions)
	if total == 0 {
		return errEmptyCriteria
	}
	return nil
}

func combinedText(input GoalInput) string {
	parts := make([]string, 0, 2)
	if strings.TrimSpace(input.Title) != "" {
		parts = append(parts, input.Title)
	}
	if strings.TrimSpace(input.Description) != "" {
		parts = append(parts, input.Description)
	}
	return strings.Join(parts, ". ")
}
