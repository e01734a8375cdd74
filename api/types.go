package api

import "github.com/nrtkbb/comicshelf/models"

// ComicsResponse is the body of GET /api/comics.
type ComicsResponse struct {
	Count  int                 `json:"count"`
	Comics []models.ComicEntry `json:"comics"`
}

// PageLink points at one page image.
type PageLink struct {
	Index    int    `json:"index"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// PagesResponse is the body of GET /api/comics/:id/pages.
type PagesResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	PageCount int        `json:"pageCount"`
	Pages     []PageLink `json:"pages"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
