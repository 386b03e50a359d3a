package inmemdb

import (
	"context"
	"sort"

	"github.com/connectingcampuses/backend/core/market"
)

type marketRepository struct {
	db *marketTable
}

var _ market.Repository = (*marketRepository)(nil)

func NewMarketRepository(db *DB) *marketRepository {
	return &marketRepository{db: db.market}
}

func (r *marketRepository) CreateListing(_ context.Context, lst market.Listing) (market.Listing, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	r.db.t[lst.ID] = &lst
	return lst, nil
}

func (r *marketRepository) QueryAllListings(_ context.Context) ([]market.Listing, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	res := make([]market.Listing, 0, len(r.db.t))
	for _, lst := range r.db.t {
		res = append(res, *lst)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (r *marketRepository) GetListingByID(_ context.Context, id string) (market.Listing, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if lst, ok := r.db.t[id]; ok {
		return *lst, nil
	}
	return market.Listing{}, market.ErrNotFound
}

func (r *marketRepository) DeleteListing(_ context.Context, id string) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if _, ok := r.db.t[id]; !ok {
		return market.ErrNotFound
	}
	delete(r.db.t, id)
	return nil
}
