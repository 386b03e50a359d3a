package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/connectingcampuses/backend/core/attendance"
)

type attendanceApi struct {
	svc *attendance.Service
}

func registerAttendanceAPI(g *echo.Group, session []echo.MiddlewareFunc, svc *attendance.Service) {
	api := attendanceApi{svc: svc}

	ag := g.Group("/attendance", session...)
	ag.POST("", api.mark)
	ag.GET("", api.query)
	ag.GET("/:subject", api.retrieve)
	ag.DELETE("/subject/:subject", api.destroySubject)
	ag.DELETE("/allclear", api.clearAll)
}

// Handlers

func (api *attendanceApi) mark(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	var data attendance.Mark
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Mark")
	}
	if err = data.Validate(); err != nil {
		return err
	}

	sheet, err := api.svc.Mark(ctx.Request().Context(), claims.Subject, data)
	if err != nil {
		return errors.Wrap(err, "marking attendance")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "attendance": sheet})
}

func (api *attendanceApi) query(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	sheets, err := api.svc.ForUser(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return errors.Wrap(err, "querying attendance")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "attendance": sheets})
}

func (api *attendanceApi) retrieve(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	sheet, err := api.svc.ForSubject(ctx.Request().Context(), claims.Subject, ctx.Param("subject"))
	if err != nil {
		if errors.Cause(err) == attendance.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return errors.Wrap(err, "retrieving attendance")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "attendance": sheet})
}

func (api *attendanceApi) destroySubject(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	if err = api.svc.DeleteSubject(ctx.Request().Context(), claims.Subject, ctx.Param("subject")); err != nil {
		if errors.Cause(err) == attendance.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return errors.Wrap(err, "deleting attendance subject")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "message": "Subject attendance cleared"})
}

func (api *attendanceApi) clearAll(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	if err = api.svc.ClearAll(ctx.Request().Context(), claims.Subject); err != nil {
		return errors.Wrap(err, "clearing attendance")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "message": "All attendance cleared"})
}
