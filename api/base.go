package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/nrtkbb/comicshelf/app"
	"github.com/nrtkbb/comicshelf/models"
	"github.com/nrtkbb/comicshelf/scanner"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	library *app.Library
}

func NewHandler(library *app.Library) *Handler {
	return &Handler{library: library}
}

// Register mounts the API routes on e.
func Register(e *echo.Echo, h *Handler) {
	e.GET("/api/health", h.Health)
	e.GET("/api/comics", h.ListComics)
	e.GET("/api/comics/:id/pages", h.ListPages)
	e.GET("/api/comics/:id/pages/:index", h.GetPage)
	e.GET("/api/comics/:id/cover", h.GetCover)
}

// httpError maps library errors onto HTTP status codes.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, scanner.ErrInvalidID):
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comic id")
	case errors.Is(err, app.ErrComicNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Comic not found")
	case errors.Is(err, app.ErrPageNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Page not found")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal error")
	}
}

// getIndexFromParam gets and validates the page index path parameter
func getIndexFromParam(c echo.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid page index")
	}

	span := trace.SpanFromContext(c.Request().Context())
	span.SetAttributes(attribute.Int("page_index", index))

	return index, nil
}

// ETag builds a weak validator from size and modification time.
func ETag(st models.FileStat) string {
	return fmt.Sprintf(`W/"%x-%x"`, st.Size, st.MTime)
}

func pageURL(id string, index int) string {
	return fmt.Sprintf("/api/comics/%s/pages/%d", id, index)
}
