package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nrtkbb/comicshelf/models"
	"github.com/nrtkbb/comicshelf/scanner"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrComicNotFound = errors.New("comic not found")
	ErrPageNotFound  = errors.New("page not found")
)

// Library answers queries against one comics root. Every call rescans
// the directory tree.
type Library struct {
	root    string
	scanner *scanner.Scanner
}

func NewLibrary(root string, s *scanner.Scanner) *Library {
	return &Library{root: filepath.Clean(root), scanner: s}
}

func (l *Library) Root() string { return l.root }

// Comic is a resolved comic together with its pages.
type Comic struct {
	models.ComicEntry
	Pages []models.PageEntry
}

// Page is a resolved page file on disk.
type Page struct {
	models.PageEntry
	FilePath string
	Stat     models.FileStat
}

func (l *Library) Comics(ctx context.Context) []models.ComicEntry {
	_, span := otel.Tracer("app/library").Start(ctx, "Comics")
	defer span.End()

	comics := l.scanner.ListComics(l.root)
	span.SetAttributes(
		attribute.String("root", l.root),
		attribute.Int("comic_count", len(comics)),
	)
	return comics
}

// Comic resolves id to a comic folder directly under the root and lists
// its pages. Ids naming anything other than a single folder component are
// treated as unknown comics.
func (l *Library) Comic(ctx context.Context, id string) (*Comic, error) {
	_, span := otel.Tracer("app/library").Start(ctx, "Comic")
	defer span.End()
	span.SetAttributes(attribute.String("comic_id", id))

	name, err := scanner.DecodeID(id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if !isFolderName(name) {
		err := fmt.Errorf("%w: %q", ErrComicNotFound, name)
		span.RecordError(err)
		return nil, err
	}

	// Lstat so a symlink under the root is refused, as ListComics skips it
	dir := filepath.Join(l.root, name)
	if info, err := os.Lstat(dir); err != nil || !info.IsDir() {
		err := fmt.Errorf("%w: %q", ErrComicNotFound, name)
		span.RecordError(err)
		return nil, err
	}

	pages := l.scanner.ListPages(dir)
	span.SetAttributes(attribute.Int("page_count", len(pages)))
	if len(pages) == 0 {
		err := fmt.Errorf("%w: %q", ErrComicNotFound, name)
		span.RecordError(err)
		return nil, err
	}

	return &Comic{
		ComicEntry: models.ComicEntry{
			ID:        scanner.EncodeID(name),
			Name:      name,
			Path:      name,
			PageCount: len(pages),
		},
		Pages: pages,
	}, nil
}

// Page resolves the page at index of comic id to its file and stat.
func (l *Library) Page(ctx context.Context, id string, index int) (*Page, error) {
	ctx, span := otel.Tracer("app/library").Start(ctx, "Page")
	defer span.End()
	span.SetAttributes(attribute.Int("page_index", index))

	comic, err := l.Comic(ctx, id)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(comic.Pages) {
		err := fmt.Errorf("%w: %s has %d pages, index %d", ErrPageNotFound, comic.Name, len(comic.Pages), index)
		span.RecordError(err)
		return nil, err
	}

	entry := comic.Pages[index]
	filePath := filepath.Join(l.root, comic.Path, filepath.FromSlash(entry.RelativePath))
	st, err := scanner.Stat(filePath)
	if err != nil {
		// removed between listing and stat
		err = fmt.Errorf("%w: %v", ErrPageNotFound, err)
		span.RecordError(err)
		return nil, err
	}

	return &Page{PageEntry: entry, FilePath: filePath, Stat: st}, nil
}

func isFolderName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && !strings.ContainsRune(name, 0)
}
