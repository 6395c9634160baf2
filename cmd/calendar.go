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

// calendarCmd prints only the dividend calendar pivot.
type calendarCmd struct {
	project projectCmd
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "display the projected dividend calendar" }
func (*calendarCmd) Usage() string {
	return `dcast calendar [-d <date>] [-c <currency>] <export.csv> [...]

  Displays the per-(month, ticker) dividend calendar for the next 12 months.
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.project.date, "d", date.Today().String(), "Reference date for all trailing windows.")
	f.StringVar(&c.project.currency, "c", "", "Reporting currency (USD, GBP or EUR). Overrides the config file.")
	c.project.noDrip = true // the calendar does not need the simulation
}

func (c *calendarCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	report, err := c.project.run(f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CalendarMarkdown(report))
	return subcommands.ExitSuccess
}
