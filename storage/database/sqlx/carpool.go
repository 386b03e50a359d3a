package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/connectingcampuses/backend/core/carpool"
)

type carpoolRepository struct {
	db *sqlx.DB
}

var _ carpool.Repository = (*carpoolRepository)(nil)

func NewCarpoolRepository(db *sql.DB) *carpoolRepository {
	return &carpoolRepository{db: sqlx.NewDb(db, "postgres")}
}

const postColumns = `id, pickup_location, drop_location, travel_date, departure_time,
seats_available, additional_notes, contact_number, email, created_at`

func (repo carpoolRepository) CreatePost(ctx context.Context, post carpool.Post) (carpool.Post, error) {
	q := `
INSERT INTO carpools (` + postColumns + `)
VALUES (:id, :pickup_location, :drop_location, :travel_date, :departure_time,
        :seats_available, :additional_notes, :contact_number, :email, :created_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, post); err != nil {
		return carpool.Post{}, err
	}
	return post, nil
}

func (repo carpoolRepository) QueryAllPosts(ctx context.Context) ([]carpool.Post, error) {
	posts := make([]carpool.Post, 0)
	q := `SELECT ` + postColumns + ` FROM carpools ORDER BY travel_date, departure_time`
	if err := repo.db.SelectContext(ctx, &posts, q); err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo carpoolRepository) GetPostByID(ctx context.Context, id string) (carpool.Post, error) {
	var post carpool.Post
	q := `SELECT ` + postColumns + ` FROM carpools WHERE id = $1`
	if err := repo.db.GetContext(ctx, &post, q, id); err != nil {
		if err == sql.ErrNoRows {
			return carpool.Post{}, carpool.ErrNotFound
		}
		return carpool.Post{}, err
	}
	return post, nil
}

func (repo carpoolRepository) DeletePost(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM carpools WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return carpool.ErrNotFound
	}
	return nil
}
