package service

import (
	"context"
	"errors"

	"github.com/forgeos/forgeplan/internal/domain"
	"github.com/forgeos/forgeplan/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (*domain.PlannerSettings, error) {
	stored, err := s.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			defaults := domain.DefaultSettings()
			return &defaults, nil
		}
		return nil, err
	}
	normalized := stored.Normalized()
	return &normalized, nil
}

func (s *settingsService) Update(ctx context.Context, settings *domain.PlannerSettings) error {
	return s.settings.Upsert(ctx, settings)
}
