package user

import (
	"time"

	"github.com/volatiletech/null/v8"
	"golang.org/x/crypto/bcrypt"

	"github.com/connectingcampuses/backend/core"
)

// User is a registered campus account.
//
// An account is created unverified with an active verification token; it
// becomes verified exactly once by consuming that token. A verified account
// keeps the consumed token string around (so a re-click of the mailed link
// can be answered idempotently) but its expiry is cleared.
type User struct {
	ID             string `json:"_id" db:"id"`
	Name           string `json:"name" db:"name"`
	Email          string `json:"email" db:"email"`
	Phone          string `json:"phone" db:"phone"`
	GraduatingYear int    `json:"graduatingYear" db:"graduating_year"`

	PasswordHash []byte `json:"-" db:"password_hash"`

	IsVerified        bool        `json:"isVerified" db:"is_verified"`
	VerificationToken null.String `json:"-" db:"verification_token"`
	TokenExpires      null.Time   `json:"-" db:"token_expires"`

	ResetPasswordToken   null.String `json:"-" db:"reset_password_token"`
	ResetPasswordExpires null.Time   `json:"-" db:"reset_password_expires"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"` // UTC
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"` // UTC
}

// SetPassword replaces the stored secret with a one-way bcrypt hash.
// Every write that changes the secret must go through here.
func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

// NewUser contains information needed to register a new User.
type NewUser struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,campusemail"`
	Phone          string `json:"phone" validate:"required,phonenum"`
	Password       string `json:"password" validate:"required"`
	GraduatingYear int    `json:"graduatingYear" validate:"required,gradyear"`
}

func (nu *NewUser) Validate(svc *Service) error {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	nu.Phone = core.CleanString(nu.Phone)

	if err := core.Validate.Struct(nu); err != nil {
		return err
	}
	return svc.CheckUniqueness(nu.Email)
}

// UpdateProfile defines what information may be provided to modify an existing User.
// Zero values leave the original field untouched.
type UpdateProfile struct {
	Name           string `json:"name"`
	Phone          string `json:"phone" validate:"omitempty,phonenum"`
	GraduatingYear int    `json:"graduatingYear" validate:"omitempty,gradyear"`
}

func (up *UpdateProfile) Validate() error {
	up.Name = core.CleanString(up.Name)
	up.Phone = core.CleanString(up.Phone)
	return core.Validate.Struct(up)
}

// EmailRequest is the input to the resend-verification and forgot-password flows.
type EmailRequest struct {
	Email string `json:"email" validate:"required,campusemail"`
}

func (er *EmailRequest) Validate() error {
	er.Email = core.CleanString(er.Email, true /* lower */)
	return core.Validate.Struct(er)
}

// ResetUserPassword carries the new secret for a password reset.
// The reset token itself travels in the URL path.
type ResetUserPassword struct {
	Password string `json:"password" validate:"required"`
}

func (rp ResetUserPassword) Validate() error { return core.Validate.Struct(rp) }
