package domain

import "time"

// Planner defaults for tasks that predate the urgency/impact fields.
const (
	DefaultEstimateMin = 30
	DefaultImpact      = 3
)

type Task struct {
	ID          string
	Title       string
	Description string
	EstimateMin int // 0 = unset; see EffectiveEstimate
	Status      TaskStatus
	Priority    Priority
	Urgency     int // 1..5, 0 = unset
	Impact      int // 1..5, 0 = unset
	Type        TaskType
	DealID      string
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EffectiveEstimate returns the task estimate in minutes, defaulting to 30
// when unset.
func (t *Task) EffectiveEstimate() int {
	if t.EstimateMin > 0 {
		return t.EstimateMin
	}
	return DefaultEstimateMin
}

// EffectiveUrgency returns the explicit urgency when set, otherwise the
// value derived from the legacy priority field.
func (t *Task) EffectiveUrgency() int {
	if t.Urgency > 0 {
		return t.Urgency
	}
	return t.Priority.Urgency()
}

// EffectiveImpact returns the explicit impact when set, otherwise 3.
func (t *Task) EffectiveImpact() int {
	if t.Impact > 0 {
		return t.Impact
	}
	return DefaultImpact
}

// RevenueRelevant reports whether the task moves money directly: it is tied
// to a deal or typed as revenue work. Mutations to such tasks trigger an
// interrupt replan.
func (t *Task) RevenueRelevant() bool {
	return t.DealID != "" || t.Type == TypeRevenue
}

func (t *Task) Completed() bool {
	return t.Status == StatusCompleted
}

func (t *Task) Blocked() bool {
	return t.Status == StatusBlocked
}
