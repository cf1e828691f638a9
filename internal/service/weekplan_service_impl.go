package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/forgeos/forgeplan/internal/contract"
	"github.com/forgeos/forgeplan/internal/db"
	"github.com/forgeos/forgeplan/internal/domain"
	"github.com/forgeos/forgeplan/internal/repository"
	"github.com/forgeos/forgeplan/internal/scheduler"
	"github.com/google/uuid"
)

type weekPlanService struct {
	tasks    repository.TaskRepo
	events   repository.FixedEventRepo
	blocks   repository.CalendarBlockRepo
	settings SettingsService
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewWeekPlanService(
	tasks repository.TaskRepo,
	events repository.FixedEventRepo,
	blocks repository.CalendarBlockRepo,
	settings SettingsService,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) WeekPlanService {
	return &weekPlanService{
		tasks:    tasks,
		events:   events,
		blocks:   blocks,
		settings: settings,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *weekPlanService) Generate(ctx context.Context, req contract.WeekPlanRequest) (*contract.WeekPlanResponse, error) {
	started := time.Now()
	resp, err := s.generate(ctx, req)

	event := UseCaseEvent{
		Name:      "plan_week",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
	}
	if resp != nil {
		event.Fields = map[string]any{
			"week_start": resp.WeekStart,
			"fixed":      resp.FixedCount,
			"planned":    resp.PlannedCount,
		}
	}
	s.observer.ObserveUseCase(ctx, event)

	return resp, err
}

func (s *weekPlanService) generate(ctx context.Context, req contract.WeekPlanRequest) (*contract.WeekPlanResponse, error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}
	anchor := now
	if req.Anchor != nil {
		anchor = *req.Anchor
	}

	pending, err := s.tasks.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	storedEvents, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading fixed events: %w", err)
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	tasks := make([]domain.Task, 0, len(pending))
	for _, t := range pending {
		tasks = append(tasks, *t)
	}
	events := make([]domain.FixedEvent, 0, len(storedEvents))
	for _, e := range storedEvents {
		events = append(events, *e)
	}

	blocks := scheduler.GenerateWeekPlan(tasks, events, *settings, anchor, now, nil)
	for i := range blocks {
		blocks[i].ID = uuid.New().String()
	}

	weekStart := scheduler.WeekStart(anchor)
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteCalendarBlockRepo(tx).ReplaceWeek(ctx, weekStart, blocks)
	})
	if err != nil {
		return nil, fmt.Errorf("persisting week plan: %w", err)
	}

	return weekResponse(now, weekStart, blocks), nil
}

func (s *weekPlanService) Show(ctx context.Context, anchor time.Time) (*contract.WeekPlanResponse, error) {
	weekStart := scheduler.WeekStart(anchor)
	blocks, err := s.blocks.ListWeek(ctx, weekStart)
	if err != nil {
		return nil, fmt.Errorf("loading week plan: %w", err)
	}
	return weekResponse(time.Now().UTC(), weekStart, blocks), nil
}

func (s *weekPlanService) ToggleBlock(ctx context.Context, blockID string) (*contract.CalendarBlock, error) {
	var toggled *contract.CalendarBlock

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBlocks := repository.NewSQLiteCalendarBlockRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)

		block, err := txBlocks.GetByID(ctx, blockID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return &contract.PlanError{
					Code:    contract.PlanErrBlockNotFound,
					Message: fmt.Sprintf("no calendar block with id %s", blockID),
				}
			}
			return err
		}
		if block.Locked || block.Type == domain.BlockFixed {
			return &contract.PlanError{
				Code:    contract.PlanErrBlockLocked,
				Message: fmt.Sprintf("block %q is fixed and cannot be toggled", block.Title),
			}
		}

		block.Completed = !block.Completed
		if err := txBlocks.Update(ctx, block); err != nil {
			return err
		}
		if err := s.syncSourceTask(ctx, txTasks, block); err != nil {
			return err
		}

		toggled = block
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toggled, nil
}

// syncSourceTask mirrors a block toggle onto the task that produced the
// block. TaskID may hold a planner chunk id or a bare title, so an id miss
// falls back to a title match.
func (s *weekPlanService) syncSourceTask(ctx context.Context, tasks repository.TaskRepo, block *contract.CalendarBlock) error {
	if block.TaskID == "" {
		return nil
	}
	status := domain.StatusNotStarted
	if block.Completed {
		status = domain.StatusCompleted
	}

	err := tasks.SetStatus(ctx, block.TaskID, status)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	all, err := tasks.List(ctx, true)
	if err != nil {
		return err
	}
	for _, t := range all {
		if t.Title == block.Title {
			return tasks.SetStatus(ctx, t.ID, status)
		}
	}
	// No matching task: the block outlived its source. The toggle still
	// applies to the block itself.
	return nil
}

func weekResponse(generatedAt time.Time, weekStart time.Time, blocks []contract.CalendarBlock) *contract.WeekPlanResponse {
	resp := &contract.WeekPlanResponse{
		GeneratedAt: generatedAt,
		WeekStart:   weekStart.Format("2006-01-02"),
		Blocks:      blocks,
	}
	for _, b := range blocks {
		if b.Type == domain.BlockFixed {
			resp.FixedCount++
		} else {
			resp.PlannedCount++
		}
	}
	return resp
}
