package pages

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
	"github.com/nrtkbb/comicshelf/app"
	"github.com/nrtkbb/comicshelf/scanner"
)

type Command struct {
	rootDir string
	id      string
	name    string
	asJSON  bool
}

func (*Command) Name() string     { return "pages" }
func (*Command) Synopsis() string { return "List the pages of one comic" }
func (*Command) Usage() string {
	return `pages [-root <directory>] (-id <comic id> | -name <folder>) [-json]:
  Print the ordered pages of a comic, addressed by id or by folder name.
`
}

func (c *Command) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rootDir, "root", app.ComicsDirFromEnv(), "comics directory")
	f.StringVar(&c.id, "id", "", "comic id")
	f.StringVar(&c.name, "name", "", "comic folder name")
	f.BoolVar(&c.asJSON, "json", false, "print JSON instead of a table")
}

func (c *Command) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.rootDir == "" || (c.id == "") == (c.name == "") {
		f.Usage()
		return subcommands.ExitUsageError
	}

	id := c.id
	if c.name != "" {
		id = scanner.EncodeID(c.name)
	}

	library := app.NewLibrary(c.rootDir, scanner.New(scanner.Options{}))
	comic, err := library.Comic(ctx, id)
	if err != nil {
		log.Printf("Failed to load comic: %v", err)
		if errors.Is(err, scanner.ErrInvalidID) {
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}

	if c.asJSON {
		err = json.NewEncoder(os.Stdout).Encode(comic.Pages)
	} else {
		err = printPages(os.Stdout, comic)
	}
	if err != nil {
		log.Printf("Failed to write output: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func printPages(w io.Writer, comic *app.Comic) error {
	fmt.Fprintf(w, "%s (%d pages)\n", comic.Name, comic.PageCount)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tFILE\tPATH")
	for _, p := range comic.Pages {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", p.Index, p.Filename, p.RelativePath)
	}
	return tw.Flush()
}
