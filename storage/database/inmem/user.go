package inmemdb

import (
	"context"
	"time"

	"github.com/connectingcampuses/backend/core/user"
)

type userRepository struct {
	db *userTable
}

var _ user.Repository = (*userRepository)(nil)

func NewUserRepository(db *DB) *userRepository {
	return &userRepository{db: db.user}
}

func (r *userRepository) CheckEmailUniqueness(_ context.Context, email string) error {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	for _, usr := range r.db.t {
		if usr.Email == email {
			return user.ErrEmailExists
		}
	}
	return nil
}

func (r *userRepository) CreateUser(_ context.Context, usr user.User) (user.User, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	r.db.t[usr.ID] = &usr
	return usr, nil
}

func (r *userRepository) GetUserByID(_ context.Context, id string) (user.User, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	if usr, ok := r.db.t[id]; ok {
		return *usr, nil
	}
	return user.User{}, user.ErrNotFound
}

func (r *userRepository) GetUserByEmail(_ context.Context, email string) (user.User, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	for _, usr := range r.db.t {
		if usr.Email == email {
			return *usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *userRepository) GetUserByVerificationToken(_ context.Context, token string) (user.User, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	for _, usr := range r.db.t {
		if usr.VerificationToken.Valid && usr.VerificationToken.String == token {
			return *usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *userRepository) GetUserByResetToken(_ context.Context, token string, now time.Time) (user.User, error) {
	r.db.mutex.RLock()
	defer r.db.mutex.RUnlock()

	for _, usr := range r.db.t {
		if usr.ResetPasswordToken.Valid && usr.ResetPasswordToken.String == token &&
			usr.ResetPasswordExpires.Valid && usr.ResetPasswordExpires.Time.After(now) {
			return *usr, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *userRepository) UpdateUser(_ context.Context, usr user.User) (user.User, error) {
	r.db.mutex.Lock()
	defer r.db.mutex.Unlock()

	if _, ok := r.db.t[usr.ID]; !ok {
		return user.User{}, user.ErrNotFound
	}
	r.db.t[usr.ID] = &usr
	return usr, nil
}
