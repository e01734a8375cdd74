package scan

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/subcommands"
	"github.com/nrtkbb/comicshelf/app"
	"github.com/nrtkbb/comicshelf/models"
	"github.com/nrtkbb/comicshelf/scanner"
)

type Command struct {
	rootDir string
	asJSON  bool
}

func (*Command) Name() string     { return "scan" }
func (*Command) Synopsis() string { return "Scan the comics directory and list comics" }
func (*Command) Usage() string {
	return `scan [-root <directory>] [-json]:
  Scan the comics directory and print every comic with its id and page count.
  -root defaults to $COMICS_DIR.
`
}

func (c *Command) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rootDir, "root", app.ComicsDirFromEnv(), "comics directory")
	f.BoolVar(&c.asJSON, "json", false, "print JSON instead of a table")
}

func (c *Command) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.rootDir == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	start := time.Now()
	library := app.NewLibrary(c.rootDir, scanner.New(scanner.Options{}))
	comics := library.Comics(ctx)

	var err error
	if c.asJSON {
		err = json.NewEncoder(os.Stdout).Encode(comics)
	} else {
		err = printComics(os.Stdout, comics)
	}
	if err != nil {
		log.Printf("Failed to write output: %v", err)
		return subcommands.ExitFailure
	}

	log.Printf("Scan completed in %v", time.Since(start))
	return subcommands.ExitSuccess
}

func printComics(w io.Writer, comics []models.ComicEntry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPAGES\tID")
	total := 0
	for _, comic := range comics {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", comic.Name, humanize.Comma(int64(comic.PageCount)), comic.ID)
		total += comic.PageCount
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s comics, %s pages\n", humanize.Comma(int64(len(comics))), humanize.Comma(int64(total)))
	return err
}
