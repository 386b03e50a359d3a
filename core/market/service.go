package market

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("listing not found")

type (
	Repository interface {
		CreateListing(ctx context.Context, lst Listing) (Listing, error)
		// QueryAllListings returns listings newest first.
		QueryAllListings(ctx context.Context) ([]Listing, error)
		GetListingByID(ctx context.Context, id string) (Listing, error)
		DeleteListing(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var nowFunc = time.Now

func (svc *Service) Publish(ctx context.Context, email string, nl NewListing) (Listing, error) {
	lst := Listing{
		ID:               uuid.NewString(),
		Title:            nl.Title,
		Price:            nl.Price,
		Category:         nl.Category,
		Description:      nl.Description,
		Photo:            nl.Photo,
		PhotoContentType: nl.PhotoContentType,
		WhatsappNumber:   nl.WhatsappNumber,
		Email:            email,
		CreatedAt:        nowFunc().UTC(),
	}
	return svc.repo.CreateListing(ctx, lst)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Listing, error) {
	return svc.repo.QueryAllListings(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Listing, error) {
	return svc.repo.GetListingByID(ctx, id)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeleteListing(ctx, id)
}
