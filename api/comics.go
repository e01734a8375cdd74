package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// ListComics returns every comic in the library
func (h *Handler) ListComics(c echo.Context) error {
	ctx := c.Request().Context()
	tracer := otel.Tracer("api/handlers")
	ctx, span := tracer.Start(ctx, "ListComics")
	defer span.End()

	c.SetRequest(c.Request().WithContext(ctx))

	comics := h.library.Comics(ctx)
	span.SetAttributes(attribute.Int("response_items", len(comics)))

	return c.JSON(http.StatusOK, ComicsResponse{Count: len(comics), Comics: comics})
}

// ListPages returns the ordered pages of one comic
func (h *Handler) ListPages(c echo.Context) error {
	ctx := c.Request().Context()
	tracer := otel.Tracer("api/handlers")
	ctx, span := tracer.Start(ctx, "ListPages")
	defer span.End()

	c.SetRequest(c.Request().WithContext(ctx))

	id := c.Param("id")
	span.SetAttributes(attribute.String("comic_id", id))

	comic, err := h.library.Comic(ctx, id)
	if err != nil {
		span.RecordError(err)
		return httpError(err)
	}

	pages := make([]PageLink, len(comic.Pages))
	for i, p := range comic.Pages {
		pages[i] = PageLink{
			Index:    p.Index,
			Filename: p.Filename,
			URL:      pageURL(comic.ID, p.Index),
		}
	}
	span.SetAttributes(attribute.Int("response_items", len(pages)))

	return c.JSON(http.StatusOK, PagesResponse{
		ID:        comic.ID,
		Name:      comic.Name,
		PageCount: comic.PageCount,
		Pages:     pages,
	})
}

// GetPage serves one page image
func (h *Handler) GetPage(c echo.Context) error {
	ctx := c.Request().Context()
	tracer := otel.Tracer("api/handlers")
	ctx, span := tracer.Start(ctx, "GetPage")
	defer span.End()

	c.SetRequest(c.Request().WithContext(ctx))

	id := c.Param("id")
	span.SetAttributes(attribute.String("comic_id", id))

	index, err := getIndexFromParam(c)
	if err != nil {
		span.RecordError(err)
		return err
	}

	return h.servePage(c, id, index)
}

// GetCover serves the first page of a comic
func (h *Handler) GetCover(c echo.Context) error {
	ctx := c.Request().Context()
	tracer := otel.Tracer("api/handlers")
	ctx, span := tracer.Start(ctx, "GetCover")
	defer span.End()

	c.SetRequest(c.Request().WithContext(ctx))

	id := c.Param("id")
	span.SetAttributes(attribute.String("comic_id", id))

	return h.servePage(c, id, 0)
}

func (h *Handler) servePage(c echo.Context, id string, index int) error {
	ctx := c.Request().Context()

	page, err := h.library.Page(ctx, id, index)
	if err != nil {
		return httpError(err)
	}

	etag := ETag(page.Stat)
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	c.Response().Header().Set("ETag", etag)
	if matchesETag(c.Request().Header.Get("If-None-Match"), etag) {
		return c.NoContent(http.StatusNotModified)
	}

	return c.File(page.FilePath)
}

func matchesETag(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || candidate == etag || "W/"+candidate == etag {
			return true
		}
	}
	return false
}
