//go:build linux

package scanner

import (
	"time"

	"github.com/nrtkbb/comicshelf/models"
	"golang.org/x/sys/unix"
)

func statFile(path string) (models.FileStat, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return models.FileStat{}, err
	}
	return models.FileStat{
		Size:  st.Size,
		MTime: time.Unix(st.Mtim.Unix()).UnixMilli(),
	}, nil
}
