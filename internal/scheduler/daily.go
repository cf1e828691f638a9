package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/forgeos/forgeplan/internal/contract"
	"github.com/forgeos/forgeplan/internal/domain"
)

const (
	nextUpCount  = 3
	tonightCount = 3
)

// GenerateDailyPlan builds the time-blocked plan for the day containing now:
// completed tasks are dropped, the rest are auto-split, and each slot is
// filled greedily with the highest-scoring task that fits. Scores are
// recomputed per slot because the slot label changes them. Identical inputs
// produce an identical plan; nothing is persisted here.
func GenerateDailyPlan(tasks []domain.Task, settings domain.PlannerSettings, now time.Time) contract.DayPlanResponse {
	resp := contract.DayPlanResponse{
		GeneratedAt: now,
		Date:        now.Format("2006-01-02"),
		Now:         now.Format("15:04"),
	}

	var pool []PlannerTask
	idx := 0
	for _, t := range tasks {
		if t.Completed() {
			continue
		}
		pool = append(pool, AutoSplit(t, fmt.Sprintf("task-%d", idx))...)
		idx++
	}

	var blocks []contract.PlanBlock
	for _, slot := range BuildSlots(settings) {
		pick := pickForSlot(pool, slot, now)
		if pick < 0 {
			// No task fits; the slot stays empty. Capacity beyond the first
			// placed task is not reused: each slot holds 0 or 1 block.
			continue
		}
		task := pool[pick]
		pool = append(pool[:pick], pool[pick+1:]...)

		end := MinutesToTime(TimeToMinutes(slot.Start) + task.EffectiveEstimate())
		blocks = append(blocks, contract.PlanBlock{
			Start:  slot.Start,
			End:    end,
			Title:  task.Title,
			Reason: blockReason(task),
			TaskID: task.ID,
		})
	}
	resp.Blocks = blocks

	doNowIdx := doNowIndex(blocks, resp.Now)
	if doNowIdx >= 0 {
		doNow := blocks[doNowIdx]
		resp.DoNow = &doNow
		upper := min(doNowIdx+1+nextUpCount, len(blocks))
		resp.NextUp = append([]contract.PlanBlock(nil), blocks[doNowIdx+1:upper]...)
	}

	downtime := ParseRangeList(settings.DowntimeHours)
	for _, b := range blocks {
		if len(resp.Tonight) == tonightCount {
			break
		}
		if InAnyRange(b.Start, downtime) {
			resp.Tonight = append(resp.Tonight, b)
		}
	}

	return resp
}

// pickForSlot rescores the whole pool against the slot's label, orders by
// score descending (stable, so equal scores keep input order) and returns
// the pool index of the first task that fits, or -1.
func pickForSlot(pool []PlannerTask, slot Slot, now time.Time) int {
	order := make([]int, len(pool))
	for i := range order {
		order[i] = i
	}
	scores := make([]float64, len(pool))
	for i, t := range pool {
		scores[i] = RevenueScore(t.Task, now, slot.Label)
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	for _, i := range order {
		if taskFitsSlot(pool[i], slot) {
			return i
		}
	}
	return -1
}

// doNowIndex finds the first block still in play: the earliest block whose
// end is at or after the reference time, falling back to the first block.
func doNowIndex(blocks []contract.PlanBlock, now string) int {
	if len(blocks) == 0 {
		return -1
	}
	nowMin := TimeToMinutes(now)
	for i, b := range blocks {
		if TimeToMinutes(b.End) >= nowMin {
			return i
		}
	}
	return 0
}

func blockReason(t PlannerTask) string {
	switch {
	case t.DealID != "":
		return "Deal-moving task"
	case t.Type == domain.TypeRevenue:
		return "Revenue task"
	default:
		return "Progress task"
	}
}
