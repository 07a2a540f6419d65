package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgray/goalsmith/internal/extract"
	"github.com/dgray/goalsmith/internal/intelligence"
	"github.com/dgray/goalsmith/internal/repository"
	"github.com/dgray/goalsmith/internal/service"
	"github.com/dgray/goalsmith/internal/testutil"
)

// testApp wires a full App backed by an in-memory DB for CLI integration
// tests. The LLM stays disabled so every path is deterministic.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	goalRepo := repository.NewSQLiteGoalRepo(database)
	analysisRepo := repository.NewSQLiteAnalysisRepo(database)
	analyzer := extract.NewAnalyzer()
	criteria := intelligence.NewCriteriaService(nil, analyzer)
	planner := intelligence.NewPlanner(analyzer, criteria, nil)
	uow := testutil.NewTestUoW(database)

	return &App{
		Analyses: service.NewAnalysisService(analyzer, analysisRepo),
		Goals:    service.NewGoalService(goalRepo, planner, uow),
		Criteria: criteria,
		Refine:   intelligence.NewRefineService(nil),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestAnalyzeCmd_RendersReport(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "analyze", "lose", "15", "pounds", "in", "3", "months", "by", "running")
	require.NoError(t, err)
	assert.Contains(t, out, "GOAL ANALYSIS")
	assert.Contains(t, out, "Fitness")
}

func TestAnalyzeCmd_JSONOutput(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "analyze", "--json", "save $5000 by December")
	require.NoError(t, err)
	assert.Contains(t, out, `"original_description"`)
	assert.Contains(t, out, `"finance"`)
}

func TestAnalyzeCmd_PersistsHistory(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "analyze", "learn spanish this year")
	require.NoError(t, err)

	records, err := app.Analyses.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "learn spanish this year", records[0].Description)
}

func TestAnalyzeCmd_RequiresDescription(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "analyze")
	assert.Error(t, err)
}

func TestIntentCmd_JSON(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "intent", "--json", "run a marathon next spring")
	require.NoError(t, err)
	assert.Contains(t, out, `"domain"`)
	assert.Contains(t, out, `"fitness"`)
}

func TestTimeframeCmd_RendersDuration(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "timeframe", "finish this in 6 weeks")
	require.NoError(t, err)
	assert.Contains(t, out, "42 days")
}

func TestMetricsCmd_FindsTargets(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "metrics", "save 5000 dollars")
	require.NoError(t, err)
	assert.Contains(t, out, "5000")
}

func TestConstraintsCmd_FindsConstraints(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "constraints", "I only have evenings free because of work")
	require.NoError(t, err)
	assert.Contains(t, out, "CONSTRAINTS")
}

func TestGoalNewCmd_CreatesAndRendersPlan(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "goal", "new", "lose 15 pounds in 3 months by running")
	require.NoError(t, err)
	assert.Contains(t, out, "SMART CRITERIA")
	assert.Contains(t, out, "NEXT STEPS")

	goals, err := app.Goals.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, goals, 1)
}

func TestGoalNewCmd_NonInteractiveNeedsDescription(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "goal", "new")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "description is required")
}

func TestGoalListCmd_EmptyAndFiltered(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "goal", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No goals found.")

	_, err = executeCmd(t, app, "goal", "new", "read 24 books this year")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "goal", "list", "--status", "draft")
	require.NoError(t, err)
	assert.Contains(t, out, "Read 24 books this year")

	out, err = executeCmd(t, app, "goal", "list", "--status", "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "No goals found.")
}

func TestGoalShowCmd_ResolvesPrefix(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "goal", "new", "learn to play guitar")
	require.NoError(t, err)

	goals, err := app.Goals.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, goals, 1)

	out, err := executeCmd(t, app, "goal", "show", goals[0].ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Learn to play guitar")
}

func TestGoalDeleteCmd_WithYesFlag(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "goal", "new", "short lived goal")
	require.NoError(t, err)

	goals, err := app.Goals.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, goals, 1)

	out, err := executeCmd(t, app, "goal", "delete", "--yes", goals[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted goal")

	goals, err = app.Goals.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestGoalValidateCmd_RendersScore(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "goal", "new", "lose 15 pounds in 3 months by running")
	require.NoError(t, err)

	goals, err := app.Goals.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, goals, 1)

	out, err := executeCmd(t, app, "goal", "validate", goals[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "VALIDATION")
	assert.Contains(t, out, "/100")
}

func TestGoalHistoryCmd_ListsAnalyses(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "goal", "new", "save $5000 by December")
	require.NoError(t, err)

	goals, err := app.Goals.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, goals, 1)

	out, err := executeCmd(t, app, "goal", "history", goals[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "CONFIDENCE")
	assert.Contains(t, out, "save $5000 by December")
}

func TestCriteriaCmd_FromDescription(t *testing.T) {
	app := testApp(t)

	out, err := executeCmd(t, app, "criteria", "lose 15 pounds in 3 months")
	require.NoError(t, err)
	assert.Contains(t, out, "SPECIFIC")
	assert.Contains(t, out, "What exactly do you want to accomplish?")
}

func TestCriteriaCmd_RequiresInput(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "criteria")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provide a description or --goal")
}

func TestCriteriaCmd_FromStoredGoal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "goal", "new", "run a marathon in 6 months")
	require.NoError(t, err)

	goals, err := app.Goals.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, goals, 1)

	out, err := executeCmd(t, app, "criteria", "--goal", goals[0].ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "MEASURABLE")
}

func TestRefineCmd_LocalRecommendations(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "goal", "new", "get better at stuff")
	require.NoError(t, err)

	goals, err := app.Goals.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, goals, 1)

	out, err := executeCmd(t, app, "refine", goals[0].ID)
	require.NoError(t, err)
	assert.Contains(t, out, "REFINEMENT")
	assert.Contains(t, out, "local rules")
}

func TestRefineCmd_UnknownGoal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "refine", "ffffffff")
	assert.Error(t, err)
}
