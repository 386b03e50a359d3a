package inmemdb

import (
	"context"
	"sort"

	"github.com/connectingcampuses/backend/core/newsroom"
)

type newsroomRepository struct {
	db *newsroomTable
}

var _ newsroom.Repository = (*newsroomRepository)(nil)

func NewNewsroomRepository(db *DB) *newsroomRepository {
	return &newsroomRepository{db: db.newsroom}
}

func (r *newsroomRepository) CreateEvent(_ context.Context, evt newsroom.Event) (newsroom.Event, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	r.db.t[evt.ID] = &evt
	return evt, nil
}

func (r *newsroomRepository) query(match func(newsroom.Event) bool) []newsroom.Event {
	res := make([]newsroom.Event, 0)
	for _, evt := range r.db.t {
		if match(*evt) {
			res = append(res, *evt)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Date > res[j].Date })
	return res
}

func (r *newsroomRepository) QueryAllEvents(_ context.Context) ([]newsroom.Event, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()
	return r.query(func(newsroom.Event) bool { return true }), nil
}

func (r *newsroomRepository) QueryEventsByEmail(_ context.Context, email string) ([]newsroom.Event, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()
	return r.query(func(evt newsroom.Event) bool { return evt.Email == email }), nil
}

func (r *newsroomRepository) GetEventByID(_ context.Context, id string) (newsroom.Event, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if evt, ok := r.db.t[id]; ok {
		return *evt, nil
	}
	return newsroom.Event{}, newsroom.ErrNotFound
}

func (r *newsroomRepository) UpdateEvent(_ context.Context, evt newsroom.Event) (newsroom.Event, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if _, ok := r.db.t[evt.ID]; !ok {
		return newsroom.Event{}, newsroom.ErrNotFound
	}
	r.db.t[evt.ID] = &evt
	return evt, nil
}

func (r *newsroomRepository) DeleteEvent(_ context.Context, id string) error {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if _, ok := r.db.t[id]; !ok {
		return newsroom.ErrNotFound
	}
	delete(r.db.t, id)
	return nil
}
