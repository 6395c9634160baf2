// Package cmd implements the CLI application to project dividend income.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/divcast/divcast"
	"github.com/divcast/divcast/eodhd"
	"github.com/google/subcommands"
)

// Commands is the list of subcommands registered by the main package.
var Commands = []subcommands.Command{
	&projectCmd{},
	&calendarCmd{},
	&monthlyCmd{},
	&dripCmd{},
	&txCmd{},
	&combineCmd{},
	&topicCmd{},
}

// newMarket builds the market-data stack used by all report commands: the
// EODHD client wrapped in the per-run memoizing cache.
func newMarket(cfg *Config) divcast.MarketData {
	key := eodhd.APIKey()
	if key == "" {
		key = cfg.EodhdAPIKey
	}
	return divcast.NewCachedMarketData(eodhd.New(key))
}

// readTransactions loads and combines the CSV exports given as command
// arguments, printing import warnings to stderr.
func readTransactions(paths []string) (*divcast.ImportResult, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no transaction file given; pass one or more CSV exports")
	}
	res, err := divcast.ReadTransactionFiles(paths...)
	if err != nil {
		return nil, err
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	if res.Duplicates > 0 {
		fmt.Fprintf(os.Stderr, "Removed %d duplicated rows.\n", res.Duplicates)
	}
	return res, nil
}

// printMarkdown renders markdown for the terminal and prints it. On any
// rendering trouble the raw markdown is still printed.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
