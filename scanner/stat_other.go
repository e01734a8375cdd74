//go:build !linux && !darwin

package scanner

import (
	"os"

	"github.com/nrtkbb/comicshelf/models"
)

func statFile(path string) (models.FileStat, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.FileStat{}, err
	}
	return models.FileStat{
		Size:  info.Size(),
		MTime: info.ModTime().UnixMilli(),
	}, nil
}
