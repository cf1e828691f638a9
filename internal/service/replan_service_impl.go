package service

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeos/forgeplan/internal/contract"
)

// replanService recomputes both plans from current task state. There is no
// diffing and no notion of a stale plan: replanning with no prior plan is
// just a plan.
type replanService struct {
	day      DayPlanService
	week     WeekPlanService
	observer UseCaseObserver
}

func NewReplanService(day DayPlanService, week WeekPlanService, observers ...UseCaseObserver) ReplanService {
	return &replanService{
		day:      day,
		week:     week,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *replanService) Replan(ctx context.Context, req contract.ReplanRequest) (*contract.ReplanResponse, error) {
	started := time.Now()
	resp, err := s.replan(ctx, req)

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "replan",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"trigger": string(req.Trigger)},
		StartedAt: started,
	})

	return resp, err
}

func (s *replanService) replan(ctx context.Context, req contract.ReplanRequest) (*contract.ReplanResponse, error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	day, err := s.day.PlanDay(ctx, contract.DayPlanRequest{Now: &now})
	if err != nil {
		return nil, fmt.Errorf("replanning day: %w", err)
	}

	week, err := s.week.Generate(ctx, contract.WeekPlanRequest{Anchor: req.Anchor, Now: &now})
	if err != nil {
		return nil, fmt.Errorf("replanning week: %w", err)
	}

	return &contract.ReplanResponse{
		GeneratedAt: now,
		Trigger:     req.Trigger,
		Day:         day,
		Week:        week,
	}, nil
}
