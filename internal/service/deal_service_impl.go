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

type dealService struct {
	deals repository.DealRepo
}

func NewDealService(deals repository.DealRepo) DealService {
	return &dealService{deals: deals}
}

func (s *dealService) Create(ctx context.Context, d *domain.Deal) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("deal name is required")
	}
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.Stage == "" {
		d.Stage = "open"
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	return s.deals.Create(ctx, d)
}

func (s *dealService) GetByID(ctx context.Context, id string) (*domain.Deal, error) {
	return s.deals.GetByID(ctx, id)
}

func (s *dealService) List(ctx context.Context) ([]*domain.Deal, error) {
	return s.deals.List(ctx)
}

func (s *dealService) Update(ctx context.Context, d *domain.Deal) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("deal name is required")
	}
	d.UpdatedAt = time.Now().UTC()
	return s.deals.Update(ctx, d)
}

func (s *dealService) Delete(ctx context.Context, id string) error {
	return s.deals.Delete(ctx, id)
}
