package echoapi

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/connectingcampuses/backend/core/lostfound"
)

type lostfoundApi struct {
	svc *lostfound.Service
}

func registerLostFoundAPI(g *echo.Group, session []echo.MiddlewareFunc, svc *lostfound.Service) {
	api := lostfoundApi{svc: svc}

	lg := g.Group("/lostfound")
	lg.GET("", api.query)
	lg.GET("/:id/photo", api.photo)

	ag := lg.Group("", session...)
	ag.POST("", api.post)
	ag.DELETE("/:id", api.destroy)
}

// formPhoto reads an optional uploaded file from a multipart form. A plain
// JSON request simply yields no photo.
func formPhoto(ctx echo.Context, field string) ([]byte, string, error) {
	fh, err := ctx.FormFile(field)
	if err != nil {
		return nil, "", nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", errors.Wrap(err, "opening uploaded file")
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", errors.Wrap(err, "reading uploaded file")
	}
	return data, fh.Header.Get(echo.HeaderContentType), nil
}

// Handlers

func (api *lostfoundApi) query(ctx echo.Context) error {
	items, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying items")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "items": items})
}

func (api *lostfoundApi) photo(ctx echo.Context) error {
	item, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == lostfound.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding item by ID")
	}
	if len(item.Photo) == 0 {
		return errHttpNotFound
	}
	return ctx.Blob(http.StatusOK, item.PhotoContentType, item.Photo)
}

func (api *lostfoundApi) post(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	var data lostfound.NewItem
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewItem")
	}
	if data.Photo, data.PhotoContentType, err = formPhoto(ctx, "photo"); err != nil {
		return err
	}
	if err = data.Validate(); err != nil {
		return err
	}

	item, err := api.svc.Post(ctx.Request().Context(), claims.Email, data)
	if err != nil {
		return errors.Wrap(err, "posting item")
	}
	return ctx.JSON(http.StatusCreated, echo.Map{"success": true, "item": item})
}

func (api *lostfoundApi) destroy(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return err
	}

	item, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == lostfound.ErrNotFound {
			return errHttpNotFound
		}
		return errors.Wrap(err, "finding item by ID")
	}
	if item.Email != claims.Email {
		return errHttpForbidden
	}

	if err = api.svc.Delete(ctx.Request().Context(), item.ID); err != nil {
		return errors.Wrap(err, "deleting item")
	}
	return ctx.JSON(http.StatusOK, echo.Map{"success": true, "message": "Item deleted"})
}
