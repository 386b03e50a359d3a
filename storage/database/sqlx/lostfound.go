package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/connectingcampuses/backend/core/lostfound"
)

type lostfoundRepository struct {
	db *sqlx.DB
}

var _ lostfound.Repository = (*lostfoundRepository)(nil)

func NewLostFoundRepository(db *sql.DB) *lostfoundRepository {
	return &lostfoundRepository{db: sqlx.NewDb(db, "postgres")}
}

const itemColumns = `id, title, description, photo, photo_content_type, contact, whatsapp, date, email, created_at`

func (repo lostfoundRepository) CreateItem(ctx context.Context, item lostfound.Item) (lostfound.Item, error) {
	q := `
INSERT INTO lostfound_items (` + itemColumns + `)
VALUES (:id, :title, :description, :photo, :photo_content_type, :contact, :whatsapp, :date, :email, :created_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, item); err != nil {
		return lostfound.Item{}, err
	}
	return item, nil
}

func (repo lostfoundRepository) QueryAllItems(ctx context.Context) ([]lostfound.Item, error) {
	items := make([]lostfound.Item, 0)
	q := `SELECT ` + itemColumns + ` FROM lostfound_items ORDER BY created_at DESC`
	if err := repo.db.SelectContext(ctx, &items, q); err != nil {
		return nil, err
	}
	return items, nil
}

func (repo lostfoundRepository) GetItemByID(ctx context.Context, id string) (lostfound.Item, error) {
	var item lostfound.Item
	q := `SELECT ` + itemColumns + ` FROM lostfound_items WHERE id = $1`
	if err := repo.db.GetContext(ctx, &item, q, id); err != nil {
		if err == sql.ErrNoRows {
			return lostfound.Item{}, lostfound.ErrNotFound
		}
		return lostfound.Item{}, err
	}
	return item, nil
}

func (repo lostfoundRepository) DeleteItem(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM lostfound_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return lostfound.ErrNotFound
	}
	return nil
}
