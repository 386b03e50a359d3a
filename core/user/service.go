package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"github.com/connectingcampuses/backend/core"
)

var (
	// errors
	ErrNotFound          = errors.New("user not found")
	ErrEmailExists       = errors.New("a user with this email already exists")
	ErrTokenMissing      = errors.New("verification token is required")
	ErrTokenInvalid      = errors.New("invalid verification token")
	ErrTokenExpired      = errors.New("verification token has expired")
	ErrAlreadyVerified   = errors.New("email is already verified")
	ErrResetTokenInvalid = errors.New("invalid or expired password reset token")
)

type (
	Repository interface {
		CheckEmailUniqueness(ctx context.Context, email string) error
		CreateUser(ctx context.Context, user User) (User, error)
		GetUserByID(ctx context.Context, id string) (User, error)
		GetUserByEmail(ctx context.Context, email string) (User, error)
		GetUserByVerificationToken(ctx context.Context, token string) (User, error)
		// GetUserByResetToken only matches a token that has not expired at `now`.
		GetUserByResetToken(ctx context.Context, token string, now time.Time) (User, error)
		UpdateUser(ctx context.Context, user User) (User, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
	}
)

func NewService(repo Repository, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, mailSvc: mailSvc}
}

func (svc *Service) CheckUniqueness(email string) error {
	if err := svc.repo.CheckEmailUniqueness(context.Background(), email); err != nil {
		if err == ErrEmailExists {
			return core.NewValidationError(err, core.FieldError{Field: "email", Error: err.Error()})
		}
		return err
	}
	return nil
}

// Register creates a new unverified account with a fresh verification token
// and dispatches the verification email. Token persistence and mail dispatch
// are not transactional; a failed send is recovered via resend-verification.
func (svc *Service) Register(ctx context.Context, nu NewUser) (User, error) {
	token, expires, err := issueToken()
	if err != nil {
		return User{}, err
	}

	now := nowFunc().UTC()
	usr := User{
		ID:                uuid.NewString(),
		Name:              nu.Name,
		Email:             nu.Email,
		Phone:             nu.Phone,
		GraduatingYear:    nu.GraduatingYear,
		VerificationToken: null.StringFrom(token),
		TokenExpires:      null.TimeFrom(expires),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err = usr.SetPassword(nu.Password); err != nil {
		return User{}, err
	}

	usr, err = svc.repo.CreateUser(ctx, usr)
	if err != nil {
		return User{}, err
	}
	svc.sendVerificationMail(usr, token)
	return usr, nil
}

// VerifyEmail consumes a verification token, marking the account verified.
// A verified account retains the consumed token string (re-clicking the mailed
// link succeeds idempotently) but its expiry is cleared.
func (svc *Service) VerifyEmail(ctx context.Context, token string) (User, error) {
	if token == "" {
		return User{}, ErrTokenMissing
	}

	usr, err := svc.repo.GetUserByVerificationToken(ctx, token)
	if err != nil {
		if err == ErrNotFound {
			return User{}, ErrTokenInvalid
		}
		return User{}, err
	}
	if usr.IsVerified {
		return usr, nil
	}
	if usr.TokenExpires.Valid && nowFunc().UTC().After(usr.TokenExpires.Time) {
		return User{}, ErrTokenExpired
	}

	usr.IsVerified = true
	usr.TokenExpires = null.Time{}
	usr.UpdatedAt = nowFunc().UTC()
	return svc.repo.UpdateUser(ctx, usr)
}

// ResendVerification overwrites any previously issued verification token with
// a fresh one and re-dispatches the verification email.
func (svc *Service) ResendVerification(ctx context.Context, email string) error {
	usr, err := svc.repo.GetUserByEmail(ctx, core.CleanString(email, true /* lower */))
	if err != nil {
		return err
	}
	if usr.IsVerified {
		return ErrAlreadyVerified
	}

	token, expires, err := issueToken()
	if err != nil {
		return err
	}
	usr.VerificationToken = null.StringFrom(token)
	usr.TokenExpires = null.TimeFrom(expires)
	usr.UpdatedAt = nowFunc().UTC()
	if usr, err = svc.repo.UpdateUser(ctx, usr); err != nil {
		return err
	}
	svc.sendVerificationMail(usr, token)
	return nil
}

// RequestPasswordReset issues a reset token onto the account and mails the
// reset link. Any previous reset token is overwritten.
func (svc *Service) RequestPasswordReset(ctx context.Context, email string) error {
	usr, err := svc.repo.GetUserByEmail(ctx, core.CleanString(email, true /* lower */))
	if err != nil {
		return err
	}

	token, expires, err := issueToken()
	if err != nil {
		return err
	}
	usr.ResetPasswordToken = null.StringFrom(token)
	usr.ResetPasswordExpires = null.TimeFrom(expires)
	usr.UpdatedAt = nowFunc().UTC()
	if usr, err = svc.repo.UpdateUser(ctx, usr); err != nil {
		return err
	}
	svc.sendPasswordResetMail(usr, token)
	return nil
}

// ResetPassword consumes a single-use reset token and replaces the account
// secret. Expired tokens are left in place; they can never match again.
func (svc *Service) ResetPassword(ctx context.Context, token, password string) (User, error) {
	usr, err := svc.repo.GetUserByResetToken(ctx, token, nowFunc().UTC())
	if err != nil {
		if err == ErrNotFound {
			return User{}, ErrResetTokenInvalid
		}
		return User{}, err
	}

	if err = usr.SetPassword(password); err != nil {
		return User{}, err
	}
	usr.ResetPasswordToken = null.String{}
	usr.ResetPasswordExpires = null.Time{}
	usr.UpdatedAt = nowFunc().UTC()
	return svc.repo.UpdateUser(ctx, usr)
}

// UpdateProfile modifies an existing account. Zero-valued fields are left
// untouched.
func (svc *Service) UpdateProfile(ctx context.Context, id string, up UpdateProfile) (User, error) {
	usr, err := svc.repo.GetUserByID(ctx, id)
	if err != nil {
		return User{}, err
	}
	if up.Name != "" {
		usr.Name = up.Name
	}
	if up.Phone != "" {
		usr.Phone = up.Phone
	}
	if up.GraduatingYear != 0 {
		usr.GraduatingYear = up.GraduatingYear
	}
	usr.UpdatedAt = nowFunc().UTC()
	return svc.repo.UpdateUser(ctx, usr)
}

func (svc *Service) GetByID(ctx context.Context, id string) (User, error) {
	return svc.repo.GetUserByID(ctx, id)
}

func (svc *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return svc.repo.GetUserByEmail(ctx, core.CleanString(email, true /* lower */))
}

func (svc *Service) sendVerificationMail(usr User, token string) {
	link := fmt.Sprintf("%s/verify-email?token=%s", core.Conf.FrontendBaseURL, token)
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject:      "Verify your email",
		TemplateName: "email_verification",
		TemplateData: struct {
			Name string
			Link string
		}{usr.Name, link},
	})
}

func (svc *Service) sendPasswordResetMail(usr User, token string) {
	link := fmt.Sprintf("%s/reset-password/%s", core.Conf.FrontendBaseURL, token)
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:           []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject:      "Reset your password",
		TemplateName: "password_reset",
		TemplateData: struct {
			Name string
			Link string
		}{usr.Name, link},
	})
}
