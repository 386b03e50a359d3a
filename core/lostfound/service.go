package lostfound

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("item not found")

type (
	Repository interface {
		CreateItem(ctx context.Context, item Item) (Item, error)
		// QueryAllItems returns items newest first.
		QueryAllItems(ctx context.Context) ([]Item, error)
		GetItemByID(ctx context.Context, id string) (Item, error)
		DeleteItem(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var nowFunc = time.Now

func (svc *Service) Post(ctx context.Context, email string, ni NewItem) (Item, error) {
	item := Item{
		ID:               uuid.NewString(),
		Title:            ni.Title,
		Description:      ni.Description,
		Photo:            ni.Photo,
		PhotoContentType: ni.PhotoContentType,
		Contact:          ni.Contact,
		WhatsApp:         ni.WhatsApp,
		Date:             ni.Date,
		Email:            email,
		CreatedAt:        nowFunc().UTC(),
	}
	return svc.repo.CreateItem(ctx, item)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Item, error) {
	return svc.repo.QueryAllItems(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Item, error) {
	return svc.repo.GetItemByID(ctx, id)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteItem(ctx, id)
}
