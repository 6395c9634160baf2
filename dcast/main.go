package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/divcast/divcast/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. Complete()
// returns immediately when not running in completion mode.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"config":        predict.Files("*.yaml"),
		"eodhd-api-key": predict.Something,
	},
	Sub: map[string]*complete.Command{
		"project": {
			Args: predict.Files("*.csv"),
			Flags: map[string]complete.Predictor{
				"c":       predict.Set{"USD", "GBP", "EUR"},
				"d":       predict.Something,
				"years":   predict.Something,
				"no-drip": predict.Nothing,
			},
		},
		"calendar": {
			Args: predict.Files("*.csv"),
			Flags: map[string]complete.Predictor{
				"c": predict.Set{"USD", "GBP", "EUR"},
				"d": predict.Something,
			},
		},
		"monthly": {
			Args: predict.Files("*.csv"),
			Flags: map[string]complete.Predictor{
				"c": predict.Set{"USD", "GBP", "EUR"},
				"d": predict.Something,
			},
		},
		"drip": {
			Args: predict.Files("*.csv"),
			Flags: map[string]complete.Predictor{
				"t":     predict.Something,
				"c":     predict.Set{"USD", "GBP", "EUR"},
				"d":     predict.Something,
				"years": predict.Something,
			},
		},
		"tx":      {Args: predict.Files("*.csv")},
		"combine": {Args: predict.Files("*.csv"), Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
		"topic":   {Args: predict.Set{"readme", "project", "calendar", "drip", "config"}},
	},
}

func main() {
	completion.Complete("dcast")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
