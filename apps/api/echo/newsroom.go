package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/connectingcampuses/backend/core/newsroom"
)

type newsroomApi struct {
	svc *newsroom.Service
}

func registerNewsroomAPI(g *echo.Group, session []echo.MiddlewareFunc, svc *newsroom.Service) {
	api := newsroomApi{svc: svc}

	eg := g.Group("/events")
	eg.GET("", api.query)
	eg.GET("/by-email/:email", api.queryByEmail)

	ag := eg.Group("", session...)
	ag.POST("", api.publish)
	ag.PUT("/:id", api.update)
	ag.DELETE("/:id", api.destroy)
}

// Handlers

func (api *newsroomApi) query(ctx echo.Context) error {
	events, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying events")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "events": events})
}

func (api *newsroomApi) queryByEmail(ctx echo.Context) error {
	events, err := api.svc.ByEmail(ctx.Request().Context(), ctx.Param("email"))
	if err != nil {
		return errors.Wrap(err, "querying events by email")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "events": events})
}

func (api *newsroomApi) publish(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	var data newsroom.NewEvent
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewEvent")
	}
	if err = data.Validate(); err != nil {
		return err
	}

	evt, err := api.svc.Publish(ctx.Request().Context(), claims.Email, data)
	if err != nil {
		return errors.Wrap(err, "publishing event")
	}
	return ctx.JSON(http.StatusCreated, echo.Map{"success": true, "event": evt})
}

func (api *newsroomApi) update(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	evt, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == newsroom.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding event by ID")
	}
	// only the creator may edit
	if evt.Email != claims.Email {
		return errHttpForbidden
	}

	var data newsroom.UpdateEvent
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateEvent")
	}
	if err = data.Validate(); err != nil {
		return err
	}

	evt, err = api.svc.Update(ctx.Request().Context(), evt.ID, data)
	if err != nil {
		return errors.Wrap(err, "updating event")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "event": evt})
}

func (api *newsroomApi) destroy(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	evt, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == newsroom.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding event by ID")
	}
	if evt.Email != claims.Email {
		return errHttpForbidden
	}

	if err = api.svc.Delete(ctx.Request().Context(), evt.ID); err != nil {
		return errors.Wrap(err, "deleting event")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "message": "Event deleted"})
}
