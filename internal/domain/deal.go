package domain

import "time"

// Deal is a sales opportunity. The planner only cares about its identity:
// tasks referencing a deal are weighted as revenue work.
type Deal struct {
	ID         string
	Name       string
	Company    string
	ValueCents int64
	Stage      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
