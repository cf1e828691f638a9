package contract

import "time"

type DayPlanRequest struct {
	// Now anchors both the plan date and the "do now" pointer.
	// Nil means wall-clock time.
	Now *time.Time
}

// DayPlanResponse is the daily planner output: the full timeline plus the
// derived summaries. DoNow is nil when nothing was scheduled.
type DayPlanResponse struct {
	GeneratedAt time.Time
	Date        string // ISO date being planned
	Now         string // "HH:MM" reference time used for DoNow
	Blocks      []PlanBlock
	DoNow       *PlanBlock
	NextUp      []PlanBlock // up to 3 blocks after DoNow
	Tonight     []PlanBlock // up to 3 blocks inside the downtime window
}
