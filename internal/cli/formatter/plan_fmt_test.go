package formatter

import (
	"testing"

	"github.com/forgeos/forgeplan/internal/contract"
	"github.com/forgeos/forgeplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderDayPlan_EmptyPlan(t *testing.T) {
	out := RenderDayPlan(&contract.DayPlanResponse{Date: "2026-03-02"})

	assert.Contains(t, out, "TODAY 2026-03-02")
	assert.Contains(t, out, "Nothing scheduled")
}

func TestRenderDayPlan_FullDashboard(t *testing.T) {
	doNow := contract.PlanBlock{Start: "09:00", End: "09:30", Title: "Call lead", Reason: "revenue; due today"}
	plan := &contract.DayPlanResponse{
		Date: "2026-03-02",
		Now:  "09:00",
		Blocks: []contract.PlanBlock{
			doNow,
			{Start: "09:30", End: "10:00", Title: "Ship order"},
			{Start: "19:00", End: "19:30", Title: "Bookkeeping"},
		},
		DoNow:   &doNow,
		NextUp:  []contract.PlanBlock{{Start: "09:30", End: "10:00", Title: "Ship order"}},
		Tonight: []contract.PlanBlock{{Start: "19:00", End: "19:30", Title: "Bookkeeping"}},
	}

	out := RenderDayPlan(plan)

	assert.Contains(t, out, "DO NOW")
	assert.Contains(t, out, "Call lead")
	assert.Contains(t, out, "revenue; due today")
	assert.Contains(t, out, "NEXT UP")
	assert.Contains(t, out, "Ship order")
	assert.Contains(t, out, "TONIGHT")
	assert.Contains(t, out, "Bookkeeping")
	assert.Contains(t, out, "TIMELINE")
	assert.Contains(t, out, "09:00-09:30")
}

func TestRenderWeekPlan_GroupsByDay(t *testing.T) {
	resp := &contract.WeekPlanResponse{
		WeekStart:    "2026-03-02",
		FixedCount:   1,
		PlannedCount: 2,
		Blocks: []contract.CalendarBlock{
			{ID: "aaaa1111-0000", Date: "2026-03-02", Start: "09:00", End: "10:00", Title: "Standup", Type: domain.BlockFixed, Locked: true},
			{ID: "bbbb2222-0000", Date: "2026-03-02", Start: "10:00", End: "10:45", Title: "Call lead", Type: domain.BlockRevenue},
			{ID: "cccc3333-0000", Date: "2026-03-03", Start: "09:00", End: "09:30", Title: "Ship order", Type: domain.BlockDelivery, Completed: true},
		},
	}

	out := RenderWeekPlan(resp)

	assert.Contains(t, out, "WEEK OF 2026-03-02")
	assert.Contains(t, out, "1 fixed, 2 planned")
	assert.Contains(t, out, "Monday Mar 2")
	assert.Contains(t, out, "Tuesday Mar 3")
	assert.Contains(t, out, "Standup")
	assert.Contains(t, out, "Call lead")
	assert.Contains(t, out, "aaaa1111")
	// Fixed blocks are marked differently from toggleable ones.
	assert.Contains(t, out, "▪")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "○")
}

func TestRenderWeekPlan_EmptyWeek(t *testing.T) {
	out := RenderWeekPlan(&contract.WeekPlanResponse{WeekStart: "2026-03-02"})

	assert.Contains(t, out, "Empty week")
	assert.Contains(t, out, "plan week")
}
