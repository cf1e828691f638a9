package domain

import "strings"

type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not_started"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusBlocked    TaskStatus = "blocked"
	StatusOther      TaskStatus = "other"
)

// ParseTaskStatus maps free-form status text (imported CRM data uses labels
// like "Not Started" or "Done") onto the closed status set. Unrecognized
// non-empty values land in StatusOther so they survive round-trips.
func ParseTaskStatus(s string) TaskStatus {
	switch normalizeToken(s) {
	case "", "notstarted", "pending", "todo":
		return StatusNotStarted
	case "inprogress", "started":
		return StatusInProgress
	case "completed", "complete", "done":
		return StatusCompleted
	case "blocked":
		return StatusBlocked
	default:
		return StatusOther
	}
}

type TaskType string

const (
	TypeRevenue  TaskType = "revenue"
	TypeDelivery TaskType = "delivery"
	TypeSystem   TaskType = "system"
	TypeOther    TaskType = "other"
)

// ParseTaskType maps free-form type text onto the closed type set.
// Empty input defaults to delivery, matching the planner's scoring default.
func ParseTaskType(s string) TaskType {
	t := normalizeToken(s)
	switch {
	case t == "":
		return TypeDelivery
	case strings.Contains(t, "revenue"):
		return TypeRevenue
	case strings.Contains(t, "system"):
		return TypeSystem
	case strings.Contains(t, "delivery"):
		return TypeDelivery
	default:
		return TypeOther
	}
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Urgency derives a 1..5 urgency from the legacy priority field, used when a
// task carries no explicit urgency.
func (p Priority) Urgency() int {
	switch p {
	case PriorityHigh:
		return 5
	case PriorityMedium:
		return 3
	default:
		return 2
	}
}

func ParsePriority(s string) Priority {
	switch normalizeToken(s) {
	case "high":
		return PriorityHigh
	case "medium", "med":
		return PriorityMedium
	default:
		return PriorityLow
	}
}

type ReplanTrigger string

const (
	TriggerManual      ReplanTrigger = "MANUAL"
	TriggerTaskChanged ReplanTrigger = "TASK_CHANGED"
)

// BlockType classifies a calendar block: fixed recurring events plus the
// three task-derived categories.
type BlockType string

const (
	BlockFixed    BlockType = "fixed"
	BlockRevenue  BlockType = "revenue"
	BlockDelivery BlockType = "delivery"
	BlockSystem   BlockType = "system"
)

// BlockTypeForTask returns the calendar block category for a task type.
func BlockTypeForTask(t TaskType) BlockType {
	switch t {
	case TypeRevenue:
		return BlockRevenue
	case TypeSystem:
		return BlockSystem
	default:
		return BlockDelivery
	}
}

func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")
	return s
}
