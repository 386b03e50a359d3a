package newsroom

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("event not found")

type (
	Repository interface {
		CreateEvent(ctx context.Context, evt Event) (Event, error)
		// QueryAllEvents returns events ordered by date, most recent first.
		QueryAllEvents(ctx context.Context) ([]Event, error)
		QueryEventsByEmail(ctx context.Context, email string) ([]Event, error)
		GetEventByID(ctx context.Context, id string) (Event, error)
		UpdateEvent(ctx context.Context, evt Event) (Event, error)
		DeleteEvent(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var nowFunc = time.Now

func (svc *Service) Publish(ctx context.Context, email string, ne NewEvent) (Event, error) {
	now := nowFunc().UTC()
	evt := Event{
		ID:          uuid.NewString(),
		Category:    ne.Category,
		Club:        ne.Club,
		Title:       ne.Title,
		Src:         ne.Src,
		Description: ne.Description,
		Date:        ne.Date,
		Email:       email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateEvent(ctx, evt)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Event, error) {
	return svc.repo.QueryAllEvents(ctx)
}

func (svc *Service) ByEmail(ctx context.Context, email string) ([]Event, error) {
	return svc.repo.QueryEventsByEmail(ctx, email)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Event, error) {
	return svc.repo.GetEventByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, id string, ue UpdateEvent) (Event, error) {
	evt, err := svc.repo.GetEventByID(ctx, id)
	if err != nil {
		return Event{}, err
	}
	if ue.Category != "" {
		evt.Category = ue.Category
	}
	if ue.Club != "" {
		evt.Club = ue.Club
	}
	if ue.Title != "" {
		evt.Title = ue.Title
	}
	if ue.Src != "" {
		evt.Src = ue.Src
	}
	if ue.Description != "" {
		evt.Description = ue.Description
	}
	if ue.Date != "" {
		evt.Date = ue.Date
	}
	evt.UpdatedAt = nowFunc().UTC()
	return svc.repo.UpdateEvent(ctx, evt)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteEvent(ctx, id)
}
