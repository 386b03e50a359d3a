package carpool

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("carpool post not found")

type (
	Repository interface {
		CreatePost(ctx context.Context, post Post) (Post, error)
		// QueryAllPosts returns posts ordered by travel date, soonest first.
		QueryAllPosts(ctx context.Context) ([]Post, error)
		GetPostByID(ctx context.Context, id string) (Post, error)
		DeletePost(ctx context.Context, id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

var nowFunc = time.Now

func (svc *Service) Publish(ctx context.Context, email string, np NewPost) (Post, error) {
	post := Post{
		ID:              uuid.NewString(),
		PickupLocation:  np.PickupLocation,
		DropLocation:    np.DropLocation,
		TravelDate:      np.TravelDate,
		DepartureTime:   np.DepartureTime,
		SeatsAvailable:  np.SeatsAvailable,
		AdditionalNotes: np.AdditionalNotes,
		ContactNumber:   np.ContactNumber,
		Email:           email,
		CreatedAt:       nowFunc().UTC(),
	}
	return svc.repo.CreatePost(ctx, post)
}

func (svc *Service) QueryAll(ctx context.Context) ([]Post, error) {
	return svc.repo.QueryAllPosts(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Post, error) {
	return svc.repo.GetPostByID(ctx, id)
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return svc.repo.DeletePost(ctx, id)
}
