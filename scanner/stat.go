package scanner

import (
	"errors"
	"fmt"

	"github.com/nrtkbb/comicshelf/models"
)

// ErrNotFound is returned by Stat when the file cannot be stat'ed.
var ErrNotFound = errors.New("not found")

// Stat returns the size and modification time of filePath. Any failure is
// reported as ErrNotFound.
func Stat(filePath string) (models.FileStat, error) {
	st, err := statFile(filePath)
	if err != nil {
		return models.FileStat{}, fmt.Errorf("%w: %s: %v", ErrNotFound, filePath, err)
	}
	return st, nil
}
