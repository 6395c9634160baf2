package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/divcast/divcast"
	"github.com/divcast/divcast/date"
	"github.com/divcast/divcast/renderer"
	"github.com/google/subcommands"
)

// projectCmd holds the flags for the 'project' subcommand.
type projectCmd struct {
	date     string
	currency string
	years    int
	noDrip   bool
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "compute the full dividend projection report" }
func (*projectCmd) Usage() string {
	return `dcast project [-d <date>] [-c <currency>] [-years <n>] [-no-drip] <export.csv> [...]

  Reads broker CSV exports, nets positions and projects dividend income:
  per-holding overview, monthly income, dividend calendar and DRIP growth.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date for all trailing windows.")
	f.StringVar(&c.currency, "c", "", "Reporting currency (USD, GBP or EUR). Overrides the config file.")
	f.IntVar(&c.years, "years", 0, "DRIP simulation horizon in years (1-30). Overrides the config file.")
	f.BoolVar(&c.noDrip, "no-drip", false, "Disable the DRIP simulation.")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := c.run(f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ProjectionMarkdown(report))
	return subcommands.ExitSuccess
}

// run builds the report; shared with the table-only subcommands.
func (c *projectCmd) run(paths []string) (*divcast.ProjectionReport, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	on, err := date.Parse(c.date)
	if err != nil {
		return nil, err
	}

	opts := divcast.ProjectionOptions{
		Currency:    cfg.Currency,
		AsOf:        on,
		DripEnabled: cfg.DripEnabled() && !c.noDrip,
		DripYears:   cfg.DripYears,
	}
	if c.currency != "" {
		opts.Currency = c.currency
	}
	if c.years != 0 {
		opts.DripYears = c.years
	}

	res, err := readTransactions(paths)
	if err != nil {
		return nil, err
	}

	return divcast.NewProjectionReport(res.Transactions, newMarket(cfg), opts)
}
