package service

import (
	"context"
	"time"

	"github.com/forgeos/forgeplan/internal/contract"
	"github.com/forgeos/forgeplan/internal/domain"
)

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Complete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status domain.TaskStatus) error
	Delete(ctx context.Context, id string) error
}

type DealService interface {
	Create(ctx context.Context, d *domain.Deal) error
	GetByID(ctx context.Context, id string) (*domain.Deal, error)
	List(ctx context.Context) ([]*domain.Deal, error)
	Update(ctx context.Context, d *domain.Deal) error
	Delete(ctx context.Context, id string) error
}

type EventService interface {
	// Add parses one "<Weekday> HH:MM-HH:MM <Title>" template line and
	// stores it as a recurring event.
	Add(ctx context.Context, line string) (*domain.FixedEvent, error)
	List(ctx context.Context) ([]*domain.FixedEvent, error)
	// ImportTemplate replaces the whole recurring-event set from
	// newline-separated template text, returning the number of events kept.
	ImportTemplate(ctx context.Context, text string) (int, error)
	Delete(ctx context.Context, id string) error
}

type SettingsService interface {
	// Get returns the stored settings with empty fields normalized to the
	// documented defaults.
	Get(ctx context.Context) (*domain.PlannerSettings, error)
	Update(ctx context.Context, s *domain.PlannerSettings) error
}

type DayPlanService interface {
	PlanDay(ctx context.Context, req contract.DayPlanRequest) (*contract.DayPlanResponse, error)
}

type WeekPlanService interface {
	// Generate rebuilds and persists the week anchored at the request's
	// anchor date, replacing any previous plan for that week.
	Generate(ctx context.Context, req contract.WeekPlanRequest) (*contract.WeekPlanResponse, error)
	// Show returns the stored week without regenerating it.
	Show(ctx context.Context, anchor time.Time) (*contract.WeekPlanResponse, error)
	// ToggleBlock flips a block's completion and syncs the source task's
	// status. Fixed and locked blocks cannot be toggled.
	ToggleBlock(ctx context.Context, blockID string) (*contract.CalendarBlock, error)
}

type ReplanService interface {
	Replan(ctx context.Context, req contract.ReplanRequest) (*contract.ReplanResponse, error)
}
