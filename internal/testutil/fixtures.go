package testutil

import (
	"time"

	"github.com/forgeos/forgeplan/internal/domain"
	"github.com/google/uuid"
)

// Task options
type TaskOption func(*domain.Task)

func WithEstimate(min int) TaskOption {
	return func(t *domain.Task) {
		t.EstimateMin = min
	}
}

func WithStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithType(tt domain.TaskType) TaskOption {
	return func(t *domain.Task) {
		t.Type = tt
	}
}

func WithUrgency(u int) TaskOption {
	return func(t *domain.Task) {
		t.Urgency = u
	}
}

func WithImpact(i int) TaskOption {
	return func(t *domain.Task) {
		t.Impact = i
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithDealID(id string) TaskOption {
	return func(t *domain.Task) {
		t.DealID = id
	}
}

func WithDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) {
		t.DueDate = &d
	}
}

func WithDescription(d string) TaskOption {
	return func(t *domain.Task) {
		t.Description = d
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC()
	task := &domain.Task{
		ID:          uuid.New().String(),
		Title:       title,
		EstimateMin: 30,
		Status:      domain.StatusNotStarted,
		Type:        domain.TypeDelivery,
		Urgency:     3,
		Impact:      3,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(task)
	}
	return task
}

// Deal options
type DealOption func(*domain.Deal)

func WithCompany(c string) DealOption {
	return func(d *domain.Deal) {
		d.Company = c
	}
}

func WithValueCents(v int64) DealOption {
	return func(d *domain.Deal) {
		d.ValueCents = v
	}
}

func WithStage(s string) DealOption {
	return func(d *domain.Deal) {
		d.Stage = s
	}
}

func NewTestDeal(name string, opts ...DealOption) *domain.Deal {
	now := time.Now().UTC()
	deal := &domain.Deal{
		ID:        uuid.New().String(),
		Name:      name,
		Stage:     "open",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(deal)
	}
	return deal
}

func NewTestFixedEvent(weekday time.Weekday, start, end, title string) *domain.FixedEvent {
	return &domain.FixedEvent{
		ID:        uuid.New().String(),
		Weekday:   weekday,
		Start:     start,
		End:       end,
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
}
