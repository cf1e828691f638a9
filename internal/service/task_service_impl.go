package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/forgeos/forgeplan/internal/domain"
	"github.com/forgeos/forgeplan/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks repository.TaskRepo
	deals repository.DealRepo
}

func NewTaskService(tasks repository.TaskRepo, deals repository.DealRepo) TaskService {
	return &taskService{tasks: tasks, deals: deals}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title is required")
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.EstimateMin <= 0 {
		t.EstimateMin = domain.DefaultEstimateMin
	}
	if t.Status == "" {
		t.Status = domain.StatusNotStarted
	}
	if t.Type == "" {
		t.Type = domain.TypeDelivery
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	if t.DealID != "" {
		if _, err := s.deals.GetByID(ctx, t.DealID); err != nil {
			return fmt.Errorf("resolving deal for task: %w", err)
		}
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error) {
	return s.tasks.List(ctx, includeCompleted)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task title is required")
	}
	if t.DealID != "" {
		if _, err := s.deals.GetByID(ctx, t.DealID); err != nil {
			return fmt.Errorf("resolving deal for task: %w", err)
		}
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Complete(ctx context.Context, id string) error {
	return s.tasks.SetStatus(ctx, id, domain.StatusCompleted)
}

func (s *taskService) SetStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	return s.tasks.SetStatus(ctx, id, status)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}
