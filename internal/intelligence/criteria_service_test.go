package intelligence

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgray/goalsmith/internal/extract"
	"github.com/dgray/goalsmith/internal/llm"
)

func newTestClient(endpoint string) llm.LLMClient {
	cfg := llm.DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.MaxRetries = 0
	return llm.NewOllamaClient(cfg, llm.NoopObserver{})
}

func ollamaHandler(t *testing.T, response string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"model":    "llama3.2",
			"response": response,
		})
	}
}

func TestCriteriaService_NilClientUsesLocalAdvice(t *testing.T) {
	svc := NewCriteriaService(nil, extract.NewAnalyzer())

	got := svc.Suggest(context.Background(), GoalInput{
		Title:       "Lose 15 pounds",
		Description: "I want to lose 15 pounds in 3 months by running",
	})

	require.NotNil(t, got)
	assert.Contains(t, got.Specific.Suggestions[0], "Lose 15 pounds")
	assert.NotEmpty(t, got.Measurable.Metrics)
	assert.NotEmpty(t, got.TimeBound.Milestones)
	assert.Contains(t, got.Relevant.AlignmentAreas, "fitness")
}

func TestCriteriaService_ModelOutputUsed(t *testing.T) {
	modelJSON := `{
		"specific": {"suggestions": ["Run the spring half marathon"], "questions": [], "examples": []},
		"measurable": {"suggestions": ["Track weekly distance"], "questions": [], "examples": [], "metrics": []},
		"achievable": {"suggestions": ["Build from your 10k base"], "questions": [], "considerations": [], "resources": []},
		"relevant": {"suggestions": ["Supports your health priority"], "questions": [], "alignmentAreas": [], "benefits": []},
		"timeBound": {"suggestions": ["Target race day in June"], "questions": [], "timeframes": [], "milestones": []}
	}`
	srv := httptest.NewServer(ollamaHandler(t, modelJSON))
	defer srv.Close()

	svc := NewCriteriaService(newTestClient(srv.URL), extract.NewAnalyzer())
	got := svc.Suggest(context.Background(), GoalInput{Title: "Run a half marathon"})

	require.NotNil(t, got)
	assert.Equal(t, []string{"Run the spring half marathon"}, got.Specific.Suggestions)
	assert.Equal(t, []string{"Target race day in June"}, got.TimeBound.Suggestions)
	// Normalize fills omitted sections.
	assert.NotNil(t, got.Measurable.Metrics)
}

func TestCriteriaService_GarbageOutputFallsBack(t *testing.T) {
	srv := httptest.NewServer(ollamaHandler(t, "I cannot help with that."))
	defer srv.Close()

	svc := NewCriteriaService(newTestClient(srv.URL), extract.NewAnalyzer())
	got := svc.Suggest(context.Background(), GoalInput{Title: "Read 12 books this year"})

	require.NotNil(t, got)
	assert.Contains(t, got.Specific.Suggestions[0], "Read 12 books this year")
}

func TestCriteriaService_EmptyAdviceRejected(t *testing.T) {
	modelJSON := `{
		"specific": {"suggestions": []},
		"measurable": {"suggestions": []},
		"achievable": {"suggestions": []},
		"relevant": {"suggestions": []},
		"timeBound": {"suggestions": []}
	}`
	srv := httptest.NewServer(ollamaHandler(t, modelJSON))
	defer srv.Close()

	svc := NewCriteriaService(newTestClient(srv.URL), extract.NewAnalyzer())
	got := svc.Suggest(context.Background(), GoalInput{Title: "Save $5000"})

	require.NotNil(t, got)
	// Local advice, not the empty model output.
	assert.NotEmpty(t, got.Specific.Suggestions)
}

func TestCriteriaService_ServerDownFallsBack(t *testing.T) {
	svc := NewCriteriaService(newTestClient("http://127.0.0.1:1"), extract.NewAnalyzer())
	got := svc.Suggest(context.Background(), GoalInput{Title: "Learn Spanish"})

	require.NotNil(t, got)
	assert.NotEmpty(t, got.Specific.Suggestions)
	assert.Contains(t, got.Relevant.AlignmentAreas, "learning")
}
