package service

import (
	"context"
	"fmt"
	"time"

	"github.com/forgeos/forgeplan/internal/domain"
	"github.com/forgeos/forgeplan/internal/repository"
	"github.com/forgeos/forgeplan/internal/scheduler"
	"github.com/google/uuid"
)

type eventService struct {
	events repository.FixedEventRepo
}

func NewEventService(events repository.FixedEventRepo) EventService {
	return &eventService{events: events}
}

func (s *eventService) Add(ctx context.Context, line string) (*domain.FixedEvent, error) {
	ev, ok := scheduler.ParseFixedEventLine(line)
	if !ok {
		return nil, fmt.Errorf("invalid event %q, expected \"<Mon..Sun> HH:MM-HH:MM <title>\"", line)
	}
	ev.ID = uuid.New().String()
	ev.CreatedAt = time.Now().UTC()
	if err := s.events.Create(ctx, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *eventService) List(ctx context.Context) ([]*domain.FixedEvent, error) {
	return s.events.List(ctx)
}

func (s *eventService) ImportTemplate(ctx context.Context, text string) (int, error) {
	parsed := scheduler.ParseFixedEvents(text)
	now := time.Now().UTC()

	events := make([]*domain.FixedEvent, 0, len(parsed))
	for _, ev := range parsed {
		ev.ID = uuid.New().String()
		ev.CreatedAt = now
		events = append(events, &ev)
	}
	if err := s.events.ReplaceAll(ctx, events); err != nil {
		return 0, err
	}
	return len(events), nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	return s.events.Delete(ctx, id)
}
