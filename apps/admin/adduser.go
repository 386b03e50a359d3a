package main

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/connectingcampuses/backend/core"
	"github.com/connectingcampuses/backend/core/user"
)

// addUser updates or creates a verified user.User, bypassing email verification.
func (cli *commandLine) addUser(name, email, phone string, year int, pwd string) error {
	ctx := context.Background()
	name = core.CleanString(name)
	email = core.CleanString(email, true /* lower */)
	phone = core.CleanString(phone)

	now := time.Now().UTC()
	usr, err := cli.usrRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if err != user.ErrNotFound {
			return err
		}
		usr = user.User{
			ID:        uuid.NewString(),
			CreatedAt: now,
		}
	}
	usr.Name = name
	usr.Email = email
	usr.Phone = phone
	usr.GraduatingYear = year
	usr.IsVerified = true
	usr.UpdatedAt = now
	if err := usr.SetPassword(pwd); err != nil {
		return err
	}

	if usr.CreatedAt.Equal(now) {
		_, err = cli.usrRepo.CreateUser(ctx, usr)
	} else {
		_, err = cli.usrRepo.UpdateUser(ctx, usr)
	}
	return err
}
