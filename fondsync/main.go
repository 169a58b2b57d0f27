// Command fondsync maintains the fund dataset. A bare invocation runs the
// update pipeline, which is what the recurring schedule calls.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/fondlista/funds/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion; a no-op outside a completion request.
	completion().Complete("fondsync")

	// No arguments means update, the scheduler contract.
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "update")
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
		},
		Sub: map[string]*complete.Command{
			"update": {Flags: map[string]complete.Predictor{"offline": predict.Nothing}},
			"show":   {},
			"search": {Flags: map[string]complete.Predictor{"m": predict.Set{"global", "sweden"}}},
			"assist": {},
			"topic":  {Args: predict.Set{"readme", "fallback", "formatting", "markets"}},
		},
	}
}
