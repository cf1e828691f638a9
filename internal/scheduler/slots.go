package scheduler

import "github.com/forgeos/forgeplan/internal/domain"

// SlotLabel classifies a span of free workday time.
type SlotLabel string

const (
	LabelPrime    SlotLabel = "Prime"
	LabelDowntime SlotLabel = "Downtime"
	LabelAnytime  SlotLabel = "Anytime"
)

const slotIncrementMin = 15

// Slot is a contiguous labeled span of free time within a single day. Slots
// partition the workday minus meeting blocks; adjacent increments merge only
// when they share a label.
type Slot struct {
	Start       string
	End         string
	DurationMin int
	Label       SlotLabel
}

// BuildSlots walks the configured workday in 15-minute increments, skips
// increments inside meeting blocks, labels the rest (prime is checked before
// downtime, so an ambiguous overlap favors Prime), and merges adjacent
// same-label increments into slots.
func BuildSlots(settings domain.PlannerSettings) []Slot {
	start := TimeToMinutes(settings.WorkdayStart)
	end := TimeToMinutes(settings.WorkdayEnd)

	meetings := ParseRangeList(settings.MeetingBlocks)
	prime := ParseRangeList(settings.PrimeHours)
	downtime := ParseRangeList(settings.DowntimeHours)

	type increment struct {
		m     int
		label SlotLabel
	}
	var raw []increment
	for m := start; m < end; m += slotIncrementMin {
		t := MinutesToTime(m)
		if InAnyRange(t, meetings) {
			continue
		}
		label := LabelAnytime
		switch {
		case InAnyRange(t, prime):
			label = LabelPrime
		case InAnyRange(t, downtime):
			label = LabelDowntime
		}
		raw = append(raw, increment{m: m, label: label})
	}

	var slots []Slot
	var cur *Slot
	curEnd := 0
	flush := func() {
		if cur == nil {
			return
		}
		cur.End = MinutesToTime(curEnd)
		cur.DurationMin = curEnd - TimeToMinutes(cur.Start)
		slots = append(slots, *cur)
	}
	for _, r := range raw {
		if cur != nil && r.label == cur.Label && r.m == curEnd {
			curEnd += slotIncrementMin
			continue
		}
		flush()
		cur = &Slot{Start: MinutesToTime(r.m), Label: r.label}
		curEnd = r.m + slotIncrementMin
	}
	flush()

	return slots
}

// taskFitsSlot reports whether a task may occupy a slot: the estimate fits
// the slot, blocked tasks never schedule, and systems work stays out of
// prime hours.
func taskFitsSlot(t PlannerTask, s Slot) bool {
	if t.EffectiveEstimate() > s.DurationMin {
		return false
	}
	if s.Label == LabelPrime && t.Type == domain.TypeSystem {
		return false
	}
	if t.Status == domain.StatusBlocked {
		return false
	}
	return true
}
