package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/forgeos/forgeplan/internal/contract"
	"github.com/forgeos/forgeplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain runs a command returned by Update and feeds the resulting message
// back into the model, mirroring one bubbletea cycle.
func drain(t *testing.T, m *calModel, cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		var next tea.Model
		next, cmd = m.Update(msg)
		require.Same(t, m, next)
	}
}

func keyPress(k string) tea.KeyMsg {
	if k == "space" {
		k = " "
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func newLoadedCalModel(t *testing.T, app *App) *calModel {
	t.Helper()
	m := newCalModel(app, testMonday)
	drain(t, m, m.Init())
	require.NoError(t, m.err)
	require.False(t, m.loading)
	return m
}

func TestCalModel_LoadsStoredWeek(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.Tasks.Create(ctx, &domain.Task{Title: "Call lead"}))
	anchor := testMonday
	_, err := app.WeekPlan.Generate(ctx, contract.WeekPlanRequest{Anchor: &anchor, Now: &anchor})
	require.NoError(t, err)

	m := newLoadedCalModel(t, app)

	require.NotNil(t, m.week)
	require.Len(t, m.week.Blocks, 1)
	assert.Contains(t, m.View(), "Call lead")
	assert.Contains(t, m.View(), "WEEK OF 2026-03-02")
}

func TestCalModel_EmptyWeekOffersGenerate(t *testing.T) {
	app, _ := newTestApp(t)

	m := newLoadedCalModel(t, app)
	assert.Contains(t, m.View(), "Press g to generate")
}

func TestCalModel_GenerateKeyBuildsWeek(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Tasks.Create(ctx, &domain.Task{Title: "Call lead"}))

	m := newLoadedCalModel(t, app)
	require.Empty(t, m.week.Blocks)

	_, cmd := m.Update(keyPress("g"))
	drain(t, m, cmd)

	require.NoError(t, m.err)
	assert.Len(t, m.week.Blocks, 1)
}

func TestCalModel_SpaceTogglesBlock(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	task := &domain.Task{Title: "Call lead"}
	require.NoError(t, app.Tasks.Create(ctx, task))
	anchor := testMonday
	_, err := app.WeekPlan.Generate(ctx, contract.WeekPlanRequest{Anchor: &anchor, Now: &anchor})
	require.NoError(t, err)

	m := newLoadedCalModel(t, app)
	_, cmd := m.Update(keyPress("space"))
	drain(t, m, cmd)

	require.NoError(t, m.err)
	assert.True(t, m.week.Blocks[0].Completed)

	got, err := app.Tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)
}

func TestCalModel_ToggleFixedBlockShowsStatus(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	_, err := app.Events.Add(ctx, "Mon 09:00-10:00 Standup")
	require.NoError(t, err)
	anchor := testMonday
	_, err = app.WeekPlan.Generate(ctx, contract.WeekPlanRequest{Anchor: &anchor, Now: &anchor})
	require.NoError(t, err)

	m := newLoadedCalModel(t, app)
	_, cmd := m.Update(keyPress("space"))
	drain(t, m, cmd)

	require.NoError(t, m.err)
	assert.False(t, m.week.Blocks[0].Completed)
	assert.Contains(t, m.View(), "Fixed events cannot be toggled")
}

func TestCalModel_WeekNavigation(t *testing.T) {
	app, _ := newTestApp(t)

	m := newLoadedCalModel(t, app)

	_, cmd := m.Update(keyPress("l"))
	drain(t, m, cmd)
	assert.Equal(t, testMonday.AddDate(0, 0, 7), m.anchor)

	_, cmd = m.Update(keyPress("h"))
	drain(t, m, cmd)
	assert.Equal(t, testMonday, m.anchor)
}

func TestCalModel_CursorStaysInBounds(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	require.NoError(t, app.Tasks.Create(ctx, &domain.Task{Title: "Call lead"}))
	require.NoError(t, app.Tasks.Create(ctx, &domain.Task{Title: "Ship order"}))
	anchor := testMonday
	_, err := app.WeekPlan.Generate(ctx, contract.WeekPlanRequest{Anchor: &anchor, Now: &anchor})
	require.NoError(t, err)

	m := newLoadedCalModel(t, app)
	require.Len(t, m.week.Blocks, 2)

	m.Update(keyPress("j"))
	assert.Equal(t, 1, m.cursor)
	m.Update(keyPress("j"))
	assert.Equal(t, 1, m.cursor, "cursor stops at the last block")
	m.Update(keyPress("k"))
	m.Update(keyPress("k"))
	assert.Equal(t, 0, m.cursor)
}
