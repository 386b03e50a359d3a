package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/connectingcampuses/backend/core/user"
)

// CreateUser persists a user directly through the repository, skipping the
// registration flow.
func CreateUser(
	t *testing.T,
	repo user.Repository,
	name, email, phone, pwd string,
	gradYear int,
	isVerified bool,
	verificationToken ...string,
) user.User {
	t.Helper()

	now := time.Now().UTC()
	usr := user.User{
		ID:             uuid.NewString(),
		Name:           name,
		Email:          email,
		Phone:          phone,
		GraduatingYear: gradYear,
		IsVerified:     isVerified,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if len(verificationToken) > 0 {
		usr.VerificationToken = null.StringFrom(verificationToken[0])
		usr.TokenExpires = null.TimeFrom(now.Add(time.Hour))
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}
