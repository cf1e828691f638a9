package contract

import "time"

type WeekPlanRequest struct {
	// Anchor selects the week: the plan covers Monday on/before the anchor
	// through the following Sunday. Nil anchors to today.
	Anchor *time.Time
	// Now is the scoring reference date. Nil means wall-clock time.
	Now *time.Time
}

// WeekPlanResponse carries the full rebuilt week: fixed (locked) blocks and
// generated blocks merged and sorted by (date, start).
type WeekPlanResponse struct {
	GeneratedAt  time.Time
	WeekStart    string // ISO date of the Monday
	Blocks       []CalendarBlock
	FixedCount   int
	PlannedCount int
}
