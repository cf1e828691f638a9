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

func replanRequest(trigger domain.ReplanTrigger) contract.ReplanRequest {
	now := planMonday
	req := contract.NewReplanRequest(trigger)
	req.Now = &now
	return req
}

func TestReplanService_RebuildsBothPlans(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.tasks.Create(ctx, testutil.NewTestTask("Call lead",
		testutil.WithType(domain.TypeRevenue), testutil.WithUrgency(5))))

	resp, err := env.replanSvc.Replan(ctx, replanRequest(domain.TriggerManual))
	require.NoError(t, err)
	assert.Equal(t, domain.TriggerManual, resp.Trigger)
	require.NotNil(t, resp.Day)
	require.NotNil(t, resp.Week)
	assert.NotEmpty(t, resp.Day.Blocks)
	assert.NotEmpty(t, resp.Week.Blocks)

	// The week plan was persisted.
	shown, err := env.weekSvc.Show(ctx, planMonday)
	require.NoError(t, err)
	assert.Equal(t, resp.Week.Blocks, shown.Blocks)
}

func TestReplanService_EmptyStateIsValid(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.replanSvc.Replan(context.Background(), replanRequest(domain.TriggerManual))
	require.NoError(t, err, "replanning with no tasks and no prior plan is a plan")
	assert.Empty(t, resp.Day.Blocks)
	assert.Empty(t, resp.Week.Blocks)
}

func TestReplanService_ReflectsTaskChanges(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Call lead")
	require.NoError(t, env.tasks.Create(ctx, task))

	first, err := env.replanSvc.Replan(ctx, replanRequest(domain.TriggerManual))
	require.NoError(t, err)
	require.Len(t, first.Week.Blocks, 1)

	require.NoError(t, env.taskSvc.Complete(ctx, task.ID))

	second, err := env.replanSvc.Replan(ctx, replanRequest(domain.TriggerTaskChanged))
	require.NoError(t, err)
	assert.Empty(t, second.Week.Blocks, "completed tasks drop out on the next replan")
	assert.Equal(t, domain.TriggerTaskChanged, second.Trigger)
}
