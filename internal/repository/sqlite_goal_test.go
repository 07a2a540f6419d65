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

func TestGoalRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteGoalRepo(database)
	ctx := context.Background()

	due := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	g := testutil.NewTestGoal("Lose 15 pounds",
		testutil.WithGoalDomain(domain.DomainFitness),
		testutil.WithMilestones(
			domain.Milestone{Title: "Run a 5k", Description: "First checkpoint", DueDate: &due},
			domain.Milestone{Title: "Halfway weigh-in", Description: "Mid-point check"},
		),
	)
	require.NoError(t, repo.Create(ctx, g))

	got, err := repo.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, got.ID)
	assert.Equal(t, "Lose 15 pounds", got.Title)
	assert.Equal(t, domain.DomainFitness, got.Domain)
	assert.Equal(t, domain.GoalDraft, got.Status)
	require.Len(t, got.Milestones, 2)
	assert.Equal(t, "Run a 5k", got.Milestones[0].Title)
	require.NotNil(t, got.Milestones[0].DueDate)
	assert.True(t, got.Milestones[0].DueDate.Equal(due))
	assert.Nil(t, got.Milestones[1].DueDate)
	assert.True(t, got.CreatedAt.Equal(g.CreatedAt))
}

func TestGoalRepo_GetByIDNotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteGoalRepo(database)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoalRepo_GetByPrefix(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteGoalRepo(database)
	ctx := context.Background()

	a := testutil.NewTestGoal("Learn Spanish", testutil.WithGoalID("aaaa1111-0000-0000-0000-000000000001"))
	b := testutil.NewTestGoal("Save money", testutil.WithGoalID("aaaa2222-0000-0000-0000-000000000002"))
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.GetByPrefix(ctx, "aaaa1111")
	require.NoError(t, err)
	assert.Equal(t, "Learn Spanish", got.Title)

	_, err = repo.GetByPrefix(ctx, "aaaa")
	assert.ErrorIs(t, err, ErrAmbiguousID)

	_, err = repo.GetByPrefix(ctx, "zzzz")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoalRepo_ListFiltersByStatus(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteGoalRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestGoal("Draft goal")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestGoal("Active goal",
		testutil.WithGoalStatus(domain.GoalActive))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestGoal("Done goal",
		testutil.WithGoalStatus(domain.GoalCompleted))))

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := repo.List(ctx, domain.GoalActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Active goal", active[0].Title)
}

func TestGoalRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteGoalRepo(database)
	ctx := context.Background()

	g := testutil.NewTestGoal("Read more books")
	require.NoError(t, repo.Create(ctx, g))

	g.Title = "Read 24 books this year"
	g.Status = domain.GoalActive
	g.Milestones = []domain.Milestone{{Title: "Finish book one", Description: "January"}}
	g.UpdatedAt = g.UpdatedAt.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, g))

	got, err := repo.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Read 24 books this year", got.Title)
	assert.Equal(t, domain.GoalActive, got.Status)
	require.Len(t, got.Milestones, 1)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestGoalRepo_UpdateMissingGoal(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteGoalRepo(database)

	g := testutil.NewTestGoal("Never stored")
	err := repo.Update(context.Background(), g)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoalRepo_Delete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteGoalRepo(database)
	ctx := context.Background()

	g := testutil.NewTestGoal("Short lived")
	require.NoError(t, repo.Create(ctx, g))
	require.NoError(t, repo.Delete(ctx, g.ID))

	_, err := repo.GetByID(ctx, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Delete(ctx, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoalRepo_EmptyMilestonesRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteGoalRepo(database)
	ctx := context.Background()

	g := testutil.NewTestGoal("No milestones yet")
	require.NoError(t, repo.Create(ctx, g))

	got, err := repo.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Milestones)
}
