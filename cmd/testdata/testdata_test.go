package testdata

import (
	"bytes"
	"log"
	"path/filepath"
	"testing"

	"github.com/nrtkbb/comicshelf/scanner"
)

func TestGenerateTestData(t *testing.T) {
	out := filepath.Join(t.TempDir(), "comics")
	if err := generateTestData(out); err != nil {
		t.Fatalf("generateTestData: %v", err)
	}

	var buf bytes.Buffer
	s := scanner.New(scanner.Options{Logger: log.New(&buf, "", 0)})
	comics := s.ListComics(out)

	want := map[string]int{"Blue Harbor": 3, "Night Train": 5, "星の庭": 2}
	if len(comics) != len(want) {
		t.Fatalf("got %d comics: %#v", len(comics), comics)
	}
	for _, c := range comics {
		if want[c.Name] != c.PageCount {
			t.Errorf("%s: PageCount = %d, want %d", c.Name, c.PageCount, want[c.Name])
		}
	}

	pages := s.ListPages(filepath.Join(out, "Night Train"))
	wantOrder := []string{"ch01/001.png", "ch01/002.png", "ch02/001.PNG", "ch10/001.png", "extras/cover.png"}
	for i, p := range pages {
		if p.RelativePath != wantOrder[i] {
			t.Errorf("page %d = %q, want %q", i, p.RelativePath, wantOrder[i])
		}
	}
}
