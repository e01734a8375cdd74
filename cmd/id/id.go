package id

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/nrtkbb/comicshelf/scanner"
)

type Command struct {
	decode bool
}

func (*Command) Name() string     { return "id" }
func (*Command) Synopsis() string { return "Encode folder names to comic ids, or decode ids" }
func (*Command) Usage() string {
	return `id [-decode] <value>...:
  Print the comic id of each folder name, or with -decode the folder name of each id.
`
}

func (c *Command) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.decode, "decode", false, "decode ids instead of encoding names")
}

func (c *Command) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	if err := convert(os.Stdout, f.Args(), c.decode); err != nil {
		log.Printf("Failed to decode: %v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func convert(w io.Writer, values []string, decode bool) error {
	for _, v := range values {
		if !decode {
			fmt.Fprintln(w, scanner.EncodeID(v))
			continue
		}
		name, err := scanner.DecodeID(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, name)
	}
	return nil
}
