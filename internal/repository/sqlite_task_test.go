package repository

import (
	"context"
	"testing"
	"time"

	"github.com/forgeos/forgeplan/internal/domain"
	"github.com/forgeos/forgeplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(database)
	deals := NewSQLiteDealRepo(database)
	ctx := context.Background()

	deal := testutil.NewTestDeal("Henderson account")
	require.NoError(t, deals.Create(ctx, deal))

	due := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	task := testutil.NewTestTask("Call the Henderson lead",
		testutil.WithType(domain.TypeRevenue),
		testutil.WithUrgency(5),
		testutil.WithImpact(4),
		testutil.WithDealID(deal.ID),
		testutil.WithDueDate(due),
		testutil.WithDescription("ask about the renewal"),
	)
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.Title, got.Title)
	assert.Equal(t, "ask about the renewal", got.Description)
	assert.Equal(t, domain.TypeRevenue, got.Type)
	assert.Equal(t, 5, got.Urgency)
	assert.Equal(t, 4, got.Impact)
	assert.Equal(t, deal.ID, got.DealID)
	require.NotNil(t, got.DueDate)
	assert.Equal(t, due, *got.DueDate)
	assert.Equal(t, domain.StatusNotStarted, got.Status)
}

func TestTaskRepo_TimestampsRoundTripExactly(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	// Sub-second components must survive the trip through SQLite, so an
	// update landing in the same wall-clock second still reads back as
	// later than creation.
	task := testutil.NewTestTask("Draft proposal")
	task.CreatedAt = time.Date(2026, 3, 2, 9, 15, 42, 123456789, time.UTC)
	task.UpdatedAt = task.CreatedAt.Add(250 * time.Millisecond)
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, got.CreatedAt.Equal(task.CreatedAt), "created_at lost precision: %v", got.CreatedAt)
	assert.True(t, got.UpdatedAt.Equal(task.UpdatedAt), "updated_at lost precision: %v", got.UpdatedAt)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestTaskRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_NoDealNoDueDate(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("Email invoices")
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, got.DealID)
	assert.Nil(t, got.DueDate)
}

func TestTaskRepo_ListExcludesCompletedByDefault(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	open := testutil.NewTestTask("Open")
	done := testutil.NewTestTask("Done", testutil.WithStatus(domain.StatusCompleted))
	blocked := testutil.NewTestTask("Blocked", testutil.WithStatus(domain.StatusBlocked))
	for _, task := range []*domain.Task{open, done, blocked} {
		require.NoError(t, repo.Create(ctx, task))
	}

	active, err := repo.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	all, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	titles := []string{pending[0].Title, pending[1].Title}
	assert.Contains(t, titles, "Blocked", "blocked tasks stay in the planning pool")
}

func TestTaskRepo_Update(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("Draft proposal")
	require.NoError(t, repo.Create(ctx, task))

	task.Title = "Draft and send proposal"
	task.EstimateMin = 90
	task.Status = domain.StatusInProgress
	task.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Draft and send proposal", got.Title)
	assert.Equal(t, 90, got.EstimateMin)
	assert.Equal(t, domain.StatusInProgress, got.Status)
}

func TestTaskRepo_Update_NotFound(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))

	ghost := testutil.NewTestTask("Ghost")
	err := repo.Update(context.Background(), ghost)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_SetStatus(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("Send invoice")
	require.NoError(t, repo.Create(ctx, task))

	require.NoError(t, repo.SetStatus(ctx, task.ID, domain.StatusCompleted))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)

	assert.ErrorIs(t, repo.SetStatus(ctx, "missing", domain.StatusCompleted), ErrNotFound)
}

func TestTaskRepo_Delete(t *testing.T) {
	repo := NewSQLiteTaskRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	task := testutil.NewTestTask("Temp")
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err := repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
