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

// dripCmd prints the year-by-year DRIP path for a single ticker.
type dripCmd struct {
	project projectCmd
	ticker  string
}

func (*dripCmd) Name() string     { return "drip" }
func (*dripCmd) Synopsis() string { return "display the DRIP simulation for one ticker" }
func (*dripCmd) Usage() string {
	return `dcast drip -t <ticker> [-d <date>] [-c <currency>] [-years <n>] <export.csv> [...]

  Simulates reinvesting the ticker's dividends at its current price and
  displays the resulting share and income path year by year.
`
}

func (c *dripCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker to simulate. Mandatory.")
	f.StringVar(&c.project.date, "d", date.Today().String(), "Reference date for all trailing windows.")
	f.StringVar(&c.project.currency, "c", "", "Reporting currency (USD, GBP or EUR). Overrides the config file.")
	f.IntVar(&c.project.years, "years", 0, "Simulation horizon in years (1-30). Overrides the config file.")
}

func (c *dripCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t <ticker> is mandatory")
		return subcommands.ExitUsageError
	}

	report, err := c.project.run(f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if report.NoHoldings {
		fmt.Fprintln(os.Stderr, "No holdings detected.")
		return subcommands.ExitFailure
	}

	for _, path := range report.DripPaths {
		if path.Ticker == c.ticker {
			printMarkdown(renderer.DripMarkdown(path, report.Currency))
			return subcommands.ExitSuccess
		}
	}

	fmt.Fprintf(os.Stderr, "No DRIP simulation available for %q (not held, no dividend history, or no price).\n", c.ticker)
	return subcommands.ExitFailure
}
