package scheduler

import (
	"sort"
	"time"

	"github.com/forgeos/forgeplan/internal/contract"
	"github.com/forgeos/forgeplan/internal/domain"
)

const isoDate = "2006-01-02"

// WeekStart returns midnight on the Monday on/before the anchor date.
func WeekStart(anchor time.Time) time.Time {
	d := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
	offset := int(d.Weekday())
	if offset == 0 {
		offset = 7 // Sunday belongs to the week that started six days earlier
	}
	return d.AddDate(0, 0, 1-offset)
}

// Schedulable decides whether a task may enter the weekly queue. The default
// predicate excludes completed and blocked tasks.
type Schedulable func(domain.Task) bool

// GenerateWeekPlan rebuilds the calendar for the week anchored at anchor:
// fixed events expand into locked blocks, the schedulable tasks are sorted
// once by revenue score (with a neutral Prime label — unlike the daily
// planner there is no per-slot rescore), and days Monday through Sunday are
// filled prime-ranges-first from the front of the queue. The whole block set
// replaces any previous week; there is no incremental diffing.
func GenerateWeekPlan(
	tasks []domain.Task,
	events []domain.FixedEvent,
	settings domain.PlannerSettings,
	anchor time.Time,
	now time.Time,
	schedulable Schedulable,
) []contract.CalendarBlock {
	weekStart := WeekStart(anchor)

	var fixed []contract.CalendarBlock
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		date := day.Format(isoDate)
		for _, ev := range events {
			if ev.Weekday != day.Weekday() {
				continue
			}
			fixed = append(fixed, contract.CalendarBlock{
				Date:   date,
				Start:  ev.Start,
				End:    ev.End,
				Title:  ev.Title,
				Type:   domain.BlockFixed,
				Locked: true,
			})
		}
	}

	if schedulable == nil {
		schedulable = func(t domain.Task) bool { return !t.Completed() && !t.Blocked() }
	}
	var queue []domain.Task
	for _, t := range tasks {
		if schedulable(t) {
			queue = append(queue, t)
		}
	}
	sortByRevenueScore(queue, now)

	downtime := ParseRangeList(settings.DowntimeHours)
	downtimeStart, downtimeEnd := domain.DefaultDowntimeHours[:5], domain.DefaultDowntimeHours[6:]
	if len(downtime) > 0 {
		downtimeStart, downtimeEnd = downtime[0].Start, downtime[0].End
	}

	var planned []contract.CalendarBlock
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		date := day.Format(isoDate)

		var dayFixed []TimeRange
		for _, b := range fixed {
			if b.Date == date {
				dayFixed = append(dayFixed, TimeRange{Start: b.Start, End: b.End})
			}
		}

		primeBlockers := append(append([]TimeRange(nil), dayFixed...), downtime...)
		primeFree := SubtractRanges(settings.WorkdayStart, settings.WorkdayEnd, primeBlockers)
		downtimeFree := SubtractRanges(downtimeStart, downtimeEnd, dayFixed)

		queue = fillWeekRanges(&planned, queue, primeFree, LabelPrime, date)
		// Downtime is the preferred venue for maintenance work.
		queue = systemsFirst(queue)
		queue = fillWeekRanges(&planned, queue, downtimeFree, LabelDowntime, date)
	}

	all := append(fixed, planned...)
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Date != all[j].Date {
			return all[i].Date < all[j].Date
		}
		return TimeToMinutes(all[i].Start) < TimeToMinutes(all[j].Start)
	})
	return all
}

// fillWeekRanges consumes tasks from the front of the queue into the given
// free ranges. Blocked tasks are never placed, whatever predicate admitted
// them. System tasks are skipped in prime ranges but stay queued for
// downtime. When a range's remaining width is smaller than a task's estimate
// the block is truncated to fit and the task is still consumed whole; the
// unused remainder is dropped, not re-queued.
func fillWeekRanges(
	planned *[]contract.CalendarBlock,
	queue []domain.Task,
	ranges []TimeRange,
	label SlotLabel,
	date string,
) []domain.Task {
	for _, r := range ranges {
		startMin := TimeToMinutes(r.Start)
		endMin := TimeToMinutes(r.End)
		i := 0
		for startMin < endMin && i < len(queue) {
			task := queue[i]
			if task.Blocked() {
				i++
				continue
			}
			if label == LabelPrime && task.Type == domain.TypeSystem {
				i++
				continue
			}

			est := max(minRangeMin, task.EffectiveEstimate())
			blockEnd := min(endMin, startMin+est)

			taskID := task.ID
			if taskID == "" {
				taskID = task.Title
			}
			*planned = append(*planned, contract.CalendarBlock{
				Date:      date,
				Start:     MinutesToTime(startMin),
				End:       MinutesToTime(blockEnd),
				Title:     task.Title,
				Type:      domain.BlockTypeForTask(task.Type),
				TaskID:    taskID,
				Locked:    false,
				Completed: task.Completed(),
			})

			queue = append(queue[:i], queue[i+1:]...)
			startMin = blockEnd
		}
	}
	return queue
}

// sortByRevenueScore orders tasks by descending score, stable so equal
// scores keep input order.
func sortByRevenueScore(queue []domain.Task, now time.Time) {
	scores := make([]float64, len(queue))
	for i, t := range queue {
		scores[i] = RevenueScore(t, now, LabelPrime)
	}
	order := make([]int, len(queue))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})
	sorted := make([]domain.Task, len(queue))
	for i, idx := range order {
		sorted[i] = queue[idx]
	}
	copy(queue, sorted)
}

// systemsFirst stable-partitions the queue so system tasks come first.
func systemsFirst(queue []domain.Task) []domain.Task {
	var systems, rest []domain.Task
	for _, t := range queue {
		if t.Type == domain.TypeSystem {
			systems = append(systems, t)
		} else {
			rest = append(rest, t)
		}
	}
	return append(systems, rest...)
}
