package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/connectingcampuses/backend/core/market"
)

type marketApi struct {
	svc *market.Service
}

func registerMarketAPI(g *echo.Group, session []echo.MiddlewareFunc, svc *market.Service) {
	api := marketApi{svc: svc}

	mg := g.Group("/listings")
	mg.GET("", api.query)
	mg.GET("/:id/photo", api.photo)

	ag := mg.Group("", session...)
	ag.POST("", api.publish)
	ag.DELETE("/:id", api.destroy)
}

// Handlers

func (api *marketApi) query(ctx echo.Context) error {
	listings, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying listings")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "listings": listings})
}

func (api *marketApi) photo(ctx echo.Context) error {
	lst, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == market.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding listing by ID")
	}
	if len(lst.Photo) == 0 {
		return errHttpNotFound
	}
	return ctx.Blob(http.StatusOK, lst.PhotoContentType, lst.Photo)
}

func (api *marketApi) publish(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	var data market.NewListing
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewListing")
	}
	if data.Photo, data.PhotoContentType, err = formPhoto(ctx, "photo"); err != nil {
		return err
	}
	if err = data.Validate(); err != nil {
		return err
	}

	lst, err := api.svc.Publish(ctx.Request().Context(), claims.Email, data)
	if err != nil {
		return errors.Wrap(err, "publishing listing")
	}
	return ctx.JSON(http.StatusCreated, echo.Map{"success": true, "listing": lst})
}

func (api *marketApi) destroy(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	lst, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == market.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding listing by ID")
	}
	if lst.Email != claims.Email {
		return errHttpForbidden
	}

	if err = api.svc.Delete(ctx.Request().Context(), lst.ID); err != nil {
		return errors.Wrap(err, "deleting listing")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "message": "Listing deleted"})
}
