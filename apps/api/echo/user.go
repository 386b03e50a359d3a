package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/connectingcampuses/backend/core"
	"github.com/connectingcampuses/backend/core/user"
)

type userApi struct {
	svc *user.Service
}

func registerUserAPI(g *echo.Group, session []echo.MiddlewareFunc, svc *user.Service) {
	api := userApi{svc: svc}

	ug := g.Group("/users")

	// un-authed endpoints
	ug.POST("/register", api.register)
	ug.POST("/login", api.login)
	ug.GET("/verify-email", api.verifyEmail)
	ug.POST("/resend-verification", api.resendVerification)
	ug.POST("/forgot-password", api.forgotPassword)
	ug.POST("/reset-password/:token", api.resetPassword)

	// authed endpoints
	ag := ug.Group("", session...)
	ag.GET("/profile", api.profile)
	ag.PUT("/update-profile", api.updateProfile)
	ag.POST("/logout", api.logout)
}

// Handlers

func (api *userApi) register(ctx echo.Context) error {
	var data user.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(api.svc); err != nil {
		return err
	}

	usr, err := api.svc.Register(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "registering user")
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Account created! Please check your email to verify your account.",
		"user":    usr,
	})
}

func (api *userApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	usr, err := authenticate(ctx, data.Email, data.Password, api.svc)
	if err != nil {
		return err
	}
	token, err := GenerateToken(GetUserClaims(usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	setTokenCookie(ctx, token)

	return ctx.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Welcome back " + usr.Name,
		"token":   token,
		"user":    usr,
	})
}

func (api *userApi) verifyEmail(ctx echo.Context) error {
	_, err := api.svc.VerifyEmail(ctx.Request().Context(), ctx.QueryParam("token"))
	if err != nil {
		switch errors.Cause(err) {
		case user.ErrTokenMissing, user.ErrTokenInvalid, user.ErrTokenExpired:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return errors.Wrap(err, "verifying email")
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Email verified successfully!",
	})
}

func (api *userApi) resendVerification(ctx echo.Context) error {
	var data user.EmailRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to EmailRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if err := api.svc.ResendVerification(ctx.Request().Context(), data.Email); err != nil {
		switch errors.Cause(err) {
		case user.ErrNotFound:
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case user.ErrAlreadyVerified:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return errors.Wrap(err, "resending verification")
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Verification email resent. Please check your inbox.",
	})
}

func (api *userApi) forgotPassword(ctx echo.Context) error {
	var data user.EmailRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to EmailRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if err := api.svc.RequestPasswordReset(ctx.Request().Context(), data.Email); err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return errors.Wrap(err, "requesting password reset")
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Password reset email sent. Please check your inbox.",
	})
}

func (api *userApi) resetPassword(ctx echo.Context) error {
	var data user.ResetUserPassword
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ResetUserPassword")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if _, err := api.svc.ResetPassword(ctx.Request().Context(), ctx.Param("token"), data.Password); err != nil {
		if errors.Cause(err) == user.ErrResetTokenInvalid {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return errors.Wrap(err, "resetting password")
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Password reset successfully!",
	})
}

func (api *userApi) profile(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.svc)
	if err != nil {
		return errors.Wrap(err, "getting context user")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "user": usr})
}

func (api *userApi) updateProfile(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	var data user.UpdateProfile
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateProfile")
	}
	if err = data.Validate(); err != nil {
		return err
	}

	usr, err := api.svc.UpdateProfile(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return errors.Wrap(err, "updating profile")
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Profile updated successfully",
		"user":    usr,
	})
}

func (api *userApi) logout(ctx echo.Context) error {
	clearTokenCookie(ctx)
	return ctx.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (lr *LoginRequest) Validate() error {
	lr.Email = core.CleanString(lr.Email, true /* lower */)
	return core.Validate.Struct(lr)
}
