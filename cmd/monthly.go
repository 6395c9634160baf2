package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/divcast/divcast/date"
	"github.com/divcast/divcast/renderer"
	"github.com/google/subcommands"
)

// monthlyCmd prints only the monthly income cycle.
type monthlyCmd struct {
	project projectCmd
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the projected monthly income table" }
func (*monthlyCmd) Usage() string {
	return `dcast monthly [-d <date>] [-c <currency>] <export.csv> [...]

  Displays projected dividend income per month name, Jan through Dec.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.project.date, "d", date.Today().String(), "Reference date for all trailing windows.")
	f.StringVar(&c.project.currency, "c", "", "Reporting currency (USD, GBP or EUR). Overrides the config file.")
	c.project.noDrip = true
}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := c.project.run(f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.MonthlyMarkdown(report))
	return subcommands.ExitSuccess
}
