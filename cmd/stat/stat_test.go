package stat

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nrtkbb/comicshelf/scanner"
)

func TestPrintStat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "1.jpg")
	if err := os.WriteFile(path, make([]byte, 2048), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := printStat(&buf, path); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"2.0 kB", "2048 bytes", `etag:     W/"800-`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestPrintStat_NotFound(t *testing.T) {
	var buf bytes.Buffer
	err := printStat(&buf, filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, scanner.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
