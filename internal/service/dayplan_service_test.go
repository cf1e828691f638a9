package service

import (
	"context"
	"testing"

	"github.com/forgeos/forgeplan/internal/contract"
	"github.com/forgeos/forgeplan/internal/domain"
	"github.com/forgeos/forgeplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayRequest() contract.DayPlanRequest {
	now := planMonday
	return contract.DayPlanRequest{Now: &now}
}

func TestDayPlanService_PlanDay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("Call lead",
		testutil.WithType(domain.TypeRevenue),
		testutil.WithUrgency(5),
		testutil.WithImpact(5),
	)))

	plan, err := env.daySvc.PlanDay(ctx, dayRequest())
	require.NoError(t, err)
	assert.Equal(t, "2026-03-02", plan.Date)
	require.NotEmpty(t, plan.Blocks)
	assert.Equal(t, "Call lead", plan.Blocks[0].Title)
	assert.Equal(t, "09:00", plan.Blocks[0].Start)
	require.NotNil(t, plan.DoNow)
}

func TestDayPlanService_ExcludesCompletedAndBlocked(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.tasks.Create(ctx,
		testutil.NewTestTask("Done", testutil.WithStatus(domain.StatusCompleted))))
	require.NoError(t, env.tasks.Create(ctx,
		testutil.NewTestTask("Stuck", testutil.WithStatus(domain.StatusBlocked))))

	plan, err := env.daySvc.PlanDay(ctx, dayRequest())
	require.NoError(t, err)
	assert.Empty(t, plan.Blocks)
	assert.Nil(t, plan.DoNow)
}

func TestDayPlanService_NothingPersisted(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("Call lead")))

	_, err := env.daySvc.PlanDay(ctx, dayRequest())
	require.NoError(t, err)

	var count int
	require.NoError(t, env.db.QueryRow(`SELECT COUNT(*) FROM calendar_blocks`).Scan(&count))
	assert.Zero(t, count, "the daily plan is computed, never stored")
}
