package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/divcast/divcast"
	"github.com/google/subcommands"
)

// combineCmd merges several CSV exports into one canonical, deduplicated file.
type combineCmd struct {
	output string
}

func (*combineCmd) Name() string     { return "combine" }
func (*combineCmd) Synopsis() string { return "merge CSV exports into one deduplicated file" }
func (*combineCmd) Usage() string {
	return `dcast combine [-o <file>] <export.csv> [...]

  Combines multiple broker exports, removes duplicated rows and writes the
  result in the canonical CSV shape (stdout by default).
`
}

func (c *combineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Writes to stdout when empty.")
}

func (c *combineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	res, err := readTransactions(f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	out := os.Stdout
	if c.output != "" {
		file, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		out = file
	}

	if err := divcast.WriteTransactions(out, res.Transactions); err != nil {
		fmt.Fprintln(os.Stderr, "Error writing combined CSV:", err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		fmt.Fprintf(os.Stderr, "Wrote %d transactions to %s\n", len(res.Transactions), c.output)
	}
	return subcommands.ExitSuccess
}
