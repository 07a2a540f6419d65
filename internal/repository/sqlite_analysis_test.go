package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgray/goalsmith/internal/domain"
	"github.com/dgray/goalsmith/internal/testutil"
)

func TestAnalysisRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	goals := NewSQLiteGoalRepo(database)
	repo := NewSQLiteAnalysisRepo(database)
	ctx := context.Background()

	g := testutil.NewTestGoal("Lose 15 pounds")
	require.NoError(t, goals.Create(ctx, g))

	a := testutil.NewTestAnalysis("lose 15 pounds in 3 months",
		testutil.WithAnalysisGoalID(g.ID),
		testutil.WithConfidence(0.8),
	)
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, got.GoalID)
	assert.Equal(t, "lose 15 pounds in 3 months", got.Description)
	assert.InDelta(t, 0.8, got.OverallConfidence, 1e-9)
	assert.Equal(t, "lose 15 pounds in 3 months", got.Report.Description)
	assert.Equal(t, domain.DomainProjects, got.Report.Intent.Domain)
}

func TestAnalysisRepo_GetByIDNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAnalysisRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnalysisRepo_AdHocAnalysisHasNoGoal(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAnalysisRepo(database)
	ctx := context.Background()

	a := testutil.NewTestAnalysis("read more books")
	require.NoError(t, repo.Create(ctx, a))

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, got.GoalID)
}

func TestAnalysisRepo_ListByGoalNewestFirst(t *testing.T) {
	database := testutil.NewTestDB(t)
	goals := NewSQLiteGoalRepo(database)
	repo := NewSQLiteAnalysisRepo(database)
	ctx := context.Background()

	g := testutil.NewTestGoal("Learn Spanish")
	require.NoError(t, goals.Create(ctx, g))

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		a := testutil.NewTestAnalysis("learn spanish",
			testutil.WithAnalysisGoalID(g.ID),
			testutil.WithCreatedAt(base.Add(time.Duration(i)*time.Hour)),
		)
		require.NoError(t, repo.Create(ctx, a))
	}
	other := testutil.NewTestAnalysis("unrelated")
	require.NoError(t, repo.Create(ctx, other))

	records, err := repo.ListByGoal(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.True(t, records[0].CreatedAt.After(records[1].CreatedAt))
	assert.True(t, records[1].CreatedAt.After(records[2].CreatedAt))
}

func TestAnalysisRepo_ListRecentHonorsLimit(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAnalysisRepo(database)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		a := testutil.NewTestAnalysis("goal text",
			testutil.WithCreatedAt(base.Add(time.Duration(i)*time.Minute)),
		)
		require.NoError(t, repo.Create(ctx, a))
	}

	records, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.True(t, records[0].CreatedAt.Equal(base.Add(4*time.Minute)))
	assert.True(t, records[1].CreatedAt.Equal(base.Add(3*time.Minute)))
}

func TestAnalysisRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteAnalysisRepo(database)
	ctx := context.Background()

	a := testutil.NewTestAnalysis("temporary")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Delete(ctx, a.ID))

	_, err := repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnalysisRepo_DeletedWithGoal(t *testing.T) {
	database := testutil.NewTestDB(t)
	goals := NewSQLiteGoalRepo(database)
	repo := NewSQLiteAnalysisRepo(database)
	ctx := context.Background()

	g := testutil.NewTestGoal("Cascades away")
	require.NoError(t, goals.Create(ctx, g))

	a := testutil.NewTestAnalysis("cascades away", testutil.WithAnalysisGoalID(g.ID))
	require.NoError(t, repo.Create(ctx, a))

	require.NoError(t, goals.Delete(ctx, g.ID))

	_, err := repo.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
