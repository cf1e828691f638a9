package contract

import "github.com/forgeos/forgeplan/internal/domain"

// PlanBlock is one scheduled occupancy in a daily plan: a task placed at the
// head of a slot. Blocks are time-ordered and non-overlapping by
// construction.
type PlanBlock struct {
	Start  string // "HH:MM"
	End    string // "HH:MM"
	Title  string
	Reason string
	TaskID string
}

// CalendarBlock is one dated, time-boxed entry in a week plan. Locked blocks
// come from fixed-event templates and are immovable; unlocked blocks are
// plan-generated and rebuilt wholesale on every replan.
type CalendarBlock struct {
	ID        string
	Date      string // ISO date "YYYY-MM-DD"
	Start     string // "HH:MM"
	End       string // "HH:MM"
	Title     string
	Type      domain.BlockType
	TaskID    string
	Locked    bool
	Completed bool
}

type PlanErrorCode string

const (
	PlanErrDataIntegrity PlanErrorCode = "DATA_INTEGRITY"
	PlanErrBlockLocked   PlanErrorCode = "BLOCK_LOCKED"
	PlanErrBlockNotFound PlanErrorCode = "BLOCK_NOT_FOUND"
	PlanErrInternal      PlanErrorCode = "INTERNAL_ERROR"
)

// PlanError is a typed failure surfaced to the CLI. Empty plans are valid
// responses, never errors.
type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
