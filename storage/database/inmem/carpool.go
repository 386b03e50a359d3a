package inmemdb

import (
	"context"
	"sort"

	"github.com/connectingcampuses/backend/core/carpool"
)

type carpoolRepository struct {
	db *carpoolTable
}

var _ carpool.Repository = (*carpoolRepository)(nil)

func NewCarpoolRepository(db *DB) *carpoolRepository {
	return &carpoolRepository{db: db.carpool}
}

func (r *carpoolRepository) CreatePost(_ context.Context, post carpool.Post) (carpool.Post, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	r.db.t[post.ID] = &post
	return post, nil
}

func (r *carpoolRepository) QueryAllPosts(_ context.Context) ([]carpool.Post, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	res := make([]carpool.Post, 0, len(r.db.t))
	for _, post := range r.db.t {
		res = append(res, *post)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].TravelDate != res[j].TravelDate {
			return res[i].TravelDate < res[j].TravelDate
		}
		return res[i].DepartureTime < res[j].DepartureTime
	})
	return res, nil
}

func (r *carpoolRepository) GetPostByID(_ context.Context, id string) (carpool.Post, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if post, ok := r.db.t[id]; ok {
		return *post, nil
	}
	return carpool.Post{}, carpool.ErrNotFound
}

func (r *carpoolRepository) DeletePost(_ context.Context, id string) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if _, ok := r.db.t[id]; !ok {
		return carpool.ErrNotFound
	}
	delete(r.db.t, id)
	return nil
}
