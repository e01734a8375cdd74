package scanner

import (
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nrtkbb/comicshelf/models"
)

// DefaultExtensions is the set of file extensions recognized as pages.
var DefaultExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".avif", ".bmp"}

type Options struct {
	// Extensions lists recognized image extensions, with or without the
	// leading dot. Matching is case-insensitive. Empty means DefaultExtensions.
	Extensions []string

	// Logger receives absorbed traversal failures. Nil means log.Default().
	Logger *log.Logger
}

// Scanner enumerates comics and pages under a library root.
// A Scanner holds no state between calls and is safe for concurrent use.
type Scanner struct {
	exts    map[string]struct{}
	logger  *log.Logger
	readDir func(name string) ([]os.DirEntry, error)
}

func New(opts Options) *Scanner {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	set := make(map[string]struct{}, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		set[e] = struct{}{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	return &Scanner{exts: set, logger: logger, readDir: os.ReadDir}
}

// IsImage reports whether name carries a recognized image extension.
func (s *Scanner) IsImage(name string) bool {
	_, ok := s.exts[strings.ToLower(filepath.Ext(name))]
	return ok
}

// ListComics returns every direct child folder of rootDir holding at least
// one image, in natural order of folder name. An unreadable root yields an
// empty list; an unreadable child is left out.
func (s *Scanner) ListComics(rootDir string) []models.ComicEntry {
	entries, err := s.readDir(rootDir)
	if err != nil {
		s.logger.Printf("Warning: Error listing comics in %s: %v", rootDir, err)
		if len(entries) == 0 {
			return []models.ComicEntry{}
		}
	}

	comics := []models.ComicEntry{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		count := len(s.collect(filepath.Join(rootDir, name)))
		if count == 0 {
			continue
		}
		comics = append(comics, models.ComicEntry{
			ID:        EncodeID(name),
			Name:      name,
			Path:      name,
			PageCount: count,
		})
	}

	sort.Slice(comics, func(i, j int) bool { return Less(comics[i].Name, comics[j].Name) })
	return comics
}

// ListPages returns the images under comicDir, at any depth, ordered
// naturally by their path relative to comicDir.
func (s *Scanner) ListPages(comicDir string) []models.PageEntry {
	files := s.collect(comicDir)
	sort.Slice(files, func(i, j int) bool { return Less(files[i].relPath, files[j].relPath) })

	pages := make([]models.PageEntry, len(files))
	for i, f := range files {
		pages[i] = models.PageEntry{
			Index:        i,
			Filename:     f.name,
			RelativePath: f.relPath,
		}
	}
	return pages
}

type pageFile struct {
	name    string
	relPath string
}

// nodeResult is the outcome of reading one directory. err set means the
// node was skipped, wholly or after the entries in pages and subdirs.
type nodeResult struct {
	pages   []pageFile
	subdirs []string
	err     error
}

// collect walks base with an explicit stack. Failures stay local to the
// directory they happen in.
func (s *Scanner) collect(base string) []pageFile {
	var files []pageFile
	stack := []string{""}
	for len(stack) > 0 {
		rel := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		res := s.readNode(base, rel)
		if res.err != nil {
			s.logger.Printf("Warning: Error scanning directory %s: %v", filepath.Join(base, filepath.FromSlash(rel)), res.err)
		}
		files = append(files, res.pages...)
		stack = append(stack, res.subdirs...)
	}
	return files
}

func (s *Scanner) readNode(base, rel string) nodeResult {
	entries, err := s.readDir(filepath.Join(base, filepath.FromSlash(rel)))

	var res nodeResult
	res.err = err
	for _, entry := range entries {
		child := path.Join(rel, entry.Name())
		switch {
		case entry.IsDir():
			res.subdirs = append(res.subdirs, child)
		case entry.Type().IsRegular() && s.IsImage(entry.Name()):
			res.pages = append(res.pages, pageFile{name: entry.Name(), relPath: child})
		}
	}
	return res
}
