package scheduler

import (
	"testing"

	"github.com/forgeos/forgeplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoSplit_PassThroughWhenSmallAndConcrete(t *testing.T) {
	task := domain.Task{Title: "Call the Henderson lead", EstimateMin: 30}
	chunks := AutoSplit(task, "task-0")

	require.Len(t, chunks, 1)
	assert.Equal(t, "task-0", chunks[0].PlannerID)
	assert.Empty(t, chunks[0].SplitParentID)
	assert.Equal(t, "Call the Henderson lead", chunks[0].Title)
}

func TestAutoSplit_VagueTitleInflatesToNinetyMinutes(t *testing.T) {
	// Spec scenario: a 20-minute "build" splits into two 45-minute chunks.
	task := domain.Task{Title: "build", EstimateMin: 20}
	chunks := AutoSplit(task, "task-0")

	require.Len(t, chunks, 2)
	assert.Equal(t, "build (chunk 1)", chunks[0].Title)
	assert.Equal(t, "build (chunk 2)", chunks[1].Title)
	assert.Equal(t, 45, chunks[0].EstimateMin)
	assert.Equal(t, 45, chunks[1].EstimateMin)
	assert.Equal(t, "task-0", chunks[0].SplitParentID)
	assert.Equal(t, "task-0-chunk-1", chunks[0].PlannerID)
}

func TestAutoSplit_LongTaskFinalChunkAbsorbsRemainder(t *testing.T) {
	task := domain.Task{Title: "Prepare quarterly proposal deck", EstimateMin: 100}
	chunks := AutoSplit(task, "task-3")

	require.Len(t, chunks, 3)
	assert.Equal(t, 45, chunks[0].EstimateMin)
	assert.Equal(t, 45, chunks[1].EstimateMin)
	assert.Equal(t, 10, chunks[2].EstimateMin)
}

func TestAutoSplit_ConservesEstimate(t *testing.T) {
	cases := []struct {
		title    string
		estimate int
		wantMin  int
	}{
		{"Email invoices", 30, 30},
		{"Prepare quarterly proposal deck", 100, 100},
		{"build", 20, 90},
		{"research competitors", 120, 120},
		{"do", 45, 90},
	}
	for _, tc := range cases {
		task := domain.Task{Title: tc.title, EstimateMin: tc.estimate}
		total := 0
		for _, c := range AutoSplit(task, "task-0") {
			assert.LessOrEqual(t, c.EstimateMin, 45, "%q: chunk too large", tc.title)
			assert.Greater(t, c.EstimateMin, 0, "%q: empty chunk", tc.title)
			total += c.EstimateMin
		}
		assert.Equal(t, tc.wantMin, total, "%q: split must conserve inflated estimate", tc.title)
	}
}

func TestIsVagueTitle(t *testing.T) {
	assert.True(t, IsVagueTitle("build"))
	assert.True(t, IsVagueTitle("Build the landing page"))
	assert.True(t, IsVagueTitle("work on CRM"))
	assert.True(t, IsVagueTitle("  FIX bug  "))
	assert.False(t, IsVagueTitle("building permits review"), "prefix must be a whole word")
	assert.False(t, IsVagueTitle("Call the Henderson lead"))
	assert.False(t, IsVagueTitle(""))
}
