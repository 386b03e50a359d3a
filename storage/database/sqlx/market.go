package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/connectingcampuses/backend/core/market"
)

type marketRepository struct {
	db *sqlx.DB
}

var _ market.Repository = (*marketRepository)(nil)

func NewMarketRepository(db *sql.DB) *marketRepository {
	return &marketRepository{db: sqlx.NewDb(db, "postgres")}
}

const listingColumns = `id, title, price, category, description, photo, photo_content_type,
whatsapp_number, email, created_at`

func (repo marketRepository) CreateListing(ctx context.Context, lst market.Listing) (market.Listing, error) {
	q := `
INSERT INTO listings (` + listingColumns + `)
VALUES (:id, :title, :price, :category, :description, :photo, :photo_content_type,
        :whatsapp_number, :email, :created_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, lst); err != nil {
		return market.Listing{}, err
	}
	return lst, nil
}

func (repo marketRepository) QueryAllListings(ctx context.Context) ([]market.Listing, error) {
	listings := make([]market.Listing, 0)
	q := `SELECT ` + listingColumns + ` FROM listings ORDER BY created_at DESC`
	if err := repo.db.SelectContext(ctx, &listings, q); err != nil {
		return nil, err
	}
	return listings, nil
}

func (repo marketRepository) GetListingByID(ctx context.Context, id string) (market.Listing, error) {
	var lst market.Listing
	q := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	if err := repo.db.GetContext(ctx, &lst, q, id); err != nil {
		if err == sql.ErrNoRows {
			return market.Listing{}, market.ErrNotFound
		}
		return market.Listing{}, err
	}
	return lst, nil
}

func (repo marketRepository) DeleteListing(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return market.ErrNotFound
	}
	return nil
}
