package service

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeos/forgeplan/internal/contract"
	"github.com/forgeos/forgeplan/internal/domain"
	"github.com/forgeos/forgeplan/internal/repository"
	"github.com/forgeos/forgeplan/internal/scheduler"
)

// dayPlanService computes the daily plan on demand. Nothing is persisted:
// the plan is a pure function of the pending tasks and settings.
type dayPlanService struct {
	tasks    repository.TaskRepo
	settings SettingsService
	observer UseCaseObserver
}

func NewDayPlanService(tasks repository.TaskRepo, settings SettingsService, observers ...UseCaseObserver) DayPlanService {
	return &dayPlanService{
		tasks:    tasks,
		settings: settings,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *dayPlanService) PlanDay(ctx context.Context, req contract.DayPlanRequest) (*contract.DayPlanResponse, error) {
	started := time.Now()
	resp, err := s.planDay(ctx, req)

	event := UseCaseEvent{
		Name:      "plan_day",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
	}
	if resp != nil {
		event.Fields = map[string]any{"blocks": len(resp.Blocks)}
	}
	s.observer.ObserveUseCase(ctx, event)

	return resp, err
}

func (s *dayPlanService) planDay(ctx context.Context, req contract.DayPlanRequest) (*contract.DayPlanResponse, error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	pending, err := s.tasks.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	tasks := make([]domain.Task, 0, len(pending))
	for _, t := range pending {
		tasks = append(tasks, *t)
	}

	plan := scheduler.GenerateDailyPlan(tasks, *settings, now)
	return &plan, nil
}
