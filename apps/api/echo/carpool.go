package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/connectingcampuses/backend/core/carpool"
)

type carpoolApi struct {
	svc *carpool.Service
}

func registerCarpoolAPI(g *echo.Group, session []echo.MiddlewareFunc, svc *carpool.Service) {
	api := carpoolApi{svc: svc}

	cg := g.Group("/carpools")
	cg.GET("", api.query)

	ag := cg.Group("", session...)
	ag.POST("", api.publish)
	ag.DELETE("/:id", api.destroy)
}

// Handlers

func (api *carpoolApi) query(ctx echo.Context) error {
	posts, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying carpools")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "carpools": posts})
}

func (api *carpoolApi) publish(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	var data carpool.NewPost
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPost")
	}
	if err = data.Validate(); err != nil {
		return err
	}

	post, err := api.svc.Publish(ctx.Request().Context(), claims.Email, data)
	if err != nil {
		return errors.Wrap(err, "publishing carpool")
	}
	return ctx.JSON(http.StatusCreated, echo.Map{"success": true, "carpool": post})
}

func (api *carpoolApi) destroy(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	post, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == carpool.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding carpool by ID")
	}
	if post.Email != claims.Email {
		return errHttpForbidden
	}

	if err = api.svc.Delete(ctx.Request().Context(), post.ID); err != nil {
		return errors.Wrap(err, "deleting carpool")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "message": "Carpool deleted"})
}
