package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/connectingcampuses/backend/core/user"
)

type userRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*userRepository)(nil)

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{db: sqlx.NewDb(db, "postgres")}
}

const userColumns = `id, name, email, phone, graduating_year, password_hash, is_verified,
verification_token, token_expires, reset_password_token, reset_password_expires,
created_at, updated_at`

func (repo userRepository) CheckEmailUniqueness(ctx context.Context, email string) error {
	var exists bool
	q := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	if err := repo.db.GetContext(ctx, &exists, q, email); err != nil {
		return err
	}
	if exists {
		return user.ErrEmailExists
	}
	return nil
}

func (repo userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	q := `
INSERT INTO users (` + userColumns + `)
VALUES (:id, :name, :email, :phone, :graduating_year, :password_hash, :is_verified,
        :verification_token, :token_expires, :reset_password_token, :reset_password_expires,
        :created_at, :updated_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, usr); err != nil {
		return user.User{}, err
	}
	return usr, nil
}

func (repo userRepository) GetUserByID(ctx context.Context, id string) (user.User, error) {
	var usr user.User
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	if err := repo.db.GetContext(ctx, &usr, q, id); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return usr, nil
}

func (repo userRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	var usr user.User
	q := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	if err := repo.db.GetContext(ctx, &usr, q, email); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return usr, nil
}

func (repo userRepository) GetUserByVerificationToken(ctx context.Context, token string) (user.User, error) {
	var usr user.User
	q := `SELECT ` + userColumns + ` FROM users WHERE verification_token = $1`
	if err := repo.db.GetContext(ctx, &usr, q, token); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return usr, nil
}

func (repo userRepository) GetUserByResetToken(ctx context.Context, token string, now time.Time) (user.User, error) {
	var usr user.User
	q := `SELECT ` + userColumns + ` FROM users WHERE reset_password_token = $1 AND reset_password_expires > $2`
	if err := repo.db.GetContext(ctx, &usr, q, token, now); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return usr, nil
}

func (repo userRepository) UpdateUser(ctx context.Context, usr user.User) (user.User, error) {
	q := `
UPDATE users
SET name = :name, email = :email, phone = :phone, graduating_year = :graduating_year,
    password_hash = :password_hash, is_verified = :is_verified,
    verification_token = :verification_token, token_expires = :token_expires,
    reset_password_token = :reset_password_token, reset_password_expires = :reset_password_expires,
    updated_at = :updated_at
WHERE id = :id`
	res, err := repo.db.NamedExecContext(ctx, q, usr)
	if err != nil {
		return user.User{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return user.User{}, user.ErrNotFound
	}
	return usr, nil
}
