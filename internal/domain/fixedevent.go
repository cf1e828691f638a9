package domain

import "time"

// FixedEvent is a weekly-recurring commitment ("Mon 09:00-10:00 Standup").
// The weekly planner expands it into locked calendar blocks for the anchor
// week; locked blocks are immovable and exclude other scheduling.
type FixedEvent struct {
	ID        string
	Weekday   time.Weekday
	Start     string // "HH:MM"
	End       string // "HH:MM"
	Title     string
	CreatedAt time.Time
}
