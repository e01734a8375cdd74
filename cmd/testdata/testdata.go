package testdata

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
)

type Command struct {
	outputDir string
}

func (*Command) Name() string     { return "testdata" }
func (*Command) Synopsis() string { return "Generate a sample comic library" }
func (*Command) Usage() string {
	return `testdata -out <directory>:
  Generate a sample comics directory with nested chapters for trying out scan and serve.
`
}

func (c *Command) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputDir, "out", "", "output directory path (required)")
}

func (c *Command) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.outputDir == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	if err := generateTestData(c.outputDir); err != nil {
		log.Printf("Failed to generate test data: %v", err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

// sampleFiles maps each generated file to whether it gets image content.
var sampleFiles = []struct {
	path  string
	image bool
}{
	{"Blue Harbor/1.png", true},
	{"Blue Harbor/2.png", true},
	{"Blue Harbor/10.png", true},
	{"Blue Harbor/credits.txt", false},
	{"Night Train/ch01/001.png", true},
	{"Night Train/ch01/002.png", true},
	{"Night Train/ch02/001.PNG", true},
	{"Night Train/ch10/001.png", true},
	{"Night Train/extras/cover.png", true},
	{"星の庭/第1話/1.png", true},
	{"星の庭/第1話/2.png", true},
	{"Unsorted Notes/readme.txt", false},
	{"Unsorted Notes/info.nfo", false},
	{"library.txt", false},
}

func generateTestData(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %v", err)
	}

	pages := 0
	for i, sf := range sampleFiles {
		path := filepath.Join(outputDir, filepath.FromSlash(sf.path))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %v", sf.path, err)
		}

		data := []byte(sf.path + "\n")
		if sf.image {
			var err error
			if data, err = samplePNG(i); err != nil {
				return fmt.Errorf("failed to encode %s: %v", sf.path, err)
			}
			pages++
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to create file %s: %v", sf.path, err)
		}
	}

	log.Printf("Generated %d files (%d pages) in %s", len(sampleFiles), pages, outputDir)
	return nil
}

// samplePNG renders a small solid image whose shade depends on seed.
func samplePNG(seed int) ([]byte, error) {
	img := image.NewGray(image.Rect(0, 0, 8, 12))
	shade := color.Gray{Y: uint8(40 + seed*13)}
	for y := 0; y < 12; y++ {
		for x := 0; x < 8; x++ {
			img.SetGray(x, y, shade)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
