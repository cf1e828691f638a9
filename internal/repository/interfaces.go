package repository

import (
	"context"
	"errors"
	"time"

	"github.com/forgeos/forgeplan/internal/contract"
	"github.com/forgeos/forgeplan/internal/domain"
)

// ErrNotFound is the sentinel wrapped by Get-style methods when no row
// matches. Callers test with errors.Is.
var ErrNotFound = errors.New("not found")

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error)
	// ListPending returns every task the planner may consider: anything
	// not yet completed. Blocked tasks are included so they reappear the
	// moment they unblock; the planners themselves never place them.
	ListPending(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	SetStatus(ctx context.Context, id string, status domain.TaskStatus) error
	Delete(ctx context.Context, id string) error
}

type DealRepo interface {
	Create(ctx context.Context, d *domain.Deal) error
	GetByID(ctx context.Context, id string) (*domain.Deal, error)
	List(ctx context.Context) ([]*domain.Deal, error)
	Update(ctx context.Context, d *domain.Deal) error
	Delete(ctx context.Context, id string) error
}

type FixedEventRepo interface {
	Create(ctx context.Context, e *domain.FixedEvent) error
	List(ctx context.Context) ([]*domain.FixedEvent, error)
	// ReplaceAll swaps the whole recurring-event set, used when a weekly
	// template is (re)imported.
	ReplaceAll(ctx context.Context, events []*domain.FixedEvent) error
	Delete(ctx context.Context, id string) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.PlannerSettings, error)
	Upsert(ctx context.Context, s *domain.PlannerSettings) error
}

type CalendarBlockRepo interface {
	// ReplaceWeek atomically swaps the seven days starting at weekStart
	// for the given blocks.
	ReplaceWeek(ctx context.Context, weekStart time.Time, blocks []contract.CalendarBlock) error
	ListWeek(ctx context.Context, weekStart time.Time) ([]contract.CalendarBlock, error)
	GetByID(ctx context.Context, id string) (*contract.CalendarBlock, error)
	Update(ctx context.Context, b *contract.CalendarBlock) error
}
