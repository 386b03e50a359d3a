package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/connectingcampuses/backend/core/newsroom"
)

type newsroomRepository struct {
	db *sqlx.DB
}

var _ newsroom.Repository = (*newsroomRepository)(nil)

func NewNewsroomRepository(db *sql.DB) *newsroomRepository {
	return &newsroomRepository{db: sqlx.NewDb(db, "postgres")}
}

const eventColumns = `id, category, club, title, src, description, date, email, created_at, updated_at`

func (repo newsroomRepository) CreateEvent(ctx context.Context, evt newsroom.Event) (newsroom.Event, error) {
	q := `
INSERT INTO newsroom_events (` + eventColumns + `)
VALUES (:id, :category, :club, :title, :src, :description, :date, :email, :created_at, :updated_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, evt); err != nil {
		return newsroom.Event{}, err
	}
	return evt, nil
}

func (repo newsroomRepository) QueryAllEvents(ctx context.Context) ([]newsroom.Event, error) {
	events := make([]newsroom.Event, 0)
	q := `SELECT ` + eventColumns + ` FROM newsroom_events ORDER BY date DESC`
	if err := repo.db.SelectContext(ctx, &events, q); err != nil {
		return nil, err
	}
	return events, nil
}

func (repo newsroomRepository) QueryEventsByEmail(ctx context.Context, email string) ([]newsroom.Event, error) {
	events := make([]newsroom.Event, 0)
	q := `SELECT ` + eventColumns + ` FROM newsroom_events WHERE email = $1 ORDER BY date DESC`
	if err := repo.db.SelectContext(ctx, &events, q, email); err != nil {
		return nil, err
	}
	return events, nil
}

func (repo newsroomRepository) GetEventByID(ctx context.Context, id string) (newsroom.Event, error) {
	var evt newsroom.Event
	q := `SELECT ` + eventColumns + ` FROM newsroom_events WHERE id = $1`
	if err := repo.db.GetContext(ctx, &evt, q, id); err != nil {
		if err == sql.ErrNoRows {
			return newsroom.Event{}, newsroom.ErrNotFound
		}
		return newsroom.Event{}, err
	}
	return evt, nil
}

func (repo newsroomRepository) UpdateEvent(ctx context.Context, evt newsroom.Event) (newsroom.Event, error) {
	q := `
UPDATE newsroom_events
SET category = :category, club = :club, title = :title, src = :src,
    description = :description, date = :date, updated_at = :updated_at
WHERE id = :id`
	res, err := repo.db.NamedExecContext(ctx, q, evt)
	if err != nil {
		return newsroom.Event{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return newsroom.Event{}, newsroom.ErrNotFound
	}
	return evt, nil
}

func (repo newsroomRepository) DeleteEvent(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM newsroom_events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return newsroom.ErrNotFound
	}
	return nil
}
