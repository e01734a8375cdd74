package stat

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/subcommands"
	"github.com/nrtkbb/comicshelf/api"
	"github.com/nrtkbb/comicshelf/scanner"
)

type Command struct{}

func (*Command) Name() string     { return "stat" }
func (*Command) Synopsis() string { return "Print size, modification time and ETag of files" }
func (*Command) Usage() string {
	return `stat <file>...:
  Print the size, modification time and HTTP ETag the server would send for each file.
`
}

func (c *Command) SetFlags(f *flag.FlagSet) {}

func (c *Command) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	status := subcommands.ExitSuccess
	for _, path := range f.Args() {
		if err := printStat(os.Stdout, path); err != nil {
			log.Printf("Warning: %v", err)
			status = subcommands.ExitFailure
		}
	}
	return status
}

func printStat(w io.Writer, path string) error {
	st, err := scanner.Stat(path)
	if err != nil {
		return err
	}
	mtime := time.UnixMilli(st.MTime)
	_, err = fmt.Fprintf(w, "%s\n  size:     %s (%d bytes)\n  modified: %s (%s)\n  etag:     %s\n",
		path,
		humanize.Bytes(uint64(st.Size)), st.Size,
		mtime.Format(time.RFC3339), humanize.Time(mtime),
		api.ETag(st),
	)
	return err
}
