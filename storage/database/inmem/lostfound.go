package inmemdb

import (
	"context"
	"sort"

	"github.com/connectingcampuses/backend/core/lostfound"
)

type lostfoundRepository struct {
	db *lostfoundTable
}

var _ lostfound.Repository = (*lostfoundRepository)(nil)

func NewLostFoundRepository(db *DB) *lostfoundRepository {
	return &lostfoundRepository{db: db.lostfound}
}

func (r *lostfoundRepository) CreateItem(_ context.Context, item lostfound.Item) (lostfound.Item, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	r.db.t[item.ID] = &item
	return item, nil
}

func (r *lostfoundRepository) QueryAllItems(_ context.Context) ([]lostfound.Item, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	res := make([]lostfound.Item, 0, len(r.db.t))
	for _, item := range r.db.t {
		res = append(res, *item)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CreatedAt.After(res[j].CreatedAt) })
	return res, nil
}

func (r *lostfoundRepository) GetItemByID(_ context.Context, id string) (lostfound.Item, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if item, ok := r.db.t[id]; ok {
		return *item, nil
	}
	return lostfound.Item{}, lostfound.ErrNotFound
}

func (r *lostfoundRepository) DeleteItem(_ context.Context, id string) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if _, ok := r.db.t[id]; !ok {
		return lostfound.ErrNotFound
	}
	delete(r.db.t, id)
	return nil
}
