package contract

import (
	"time"

	"github.com/forgeos/forgeplan/internal/domain"
)

type ReplanRequest struct {
	Trigger domain.ReplanTrigger
	Now     *time.Time
	Anchor  *time.Time // week anchor; nil means the current week
}

func NewReplanRequest(trigger domain.ReplanTrigger) ReplanRequest {
	return ReplanRequest{Trigger: trigger}
}

// ReplanResponse is a full recomputation of both plans from current task
// state. There is no diffing: the previous plans are simply replaced.
type ReplanResponse struct {
	GeneratedAt time.Time
	Trigger     domain.ReplanTrigger
	Day         *DayPlanResponse
	Week        *WeekPlanResponse
}
