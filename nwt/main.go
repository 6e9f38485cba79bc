package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/tmasc/networth/cmd"
)

// completion describes the CLI for shell completion. Complete() only
// acts (and exits) when invoked by the shell completion hooks.
func completion() {
	spec := &complete.Command{
		Flags: map[string]complete.Predictor{
			"store": predict.Files("*.jsonl"),
			"rates": predict.Files("*.json"),
		},
		Sub: map[string]*complete.Command{
			"import":       {Args: predict.Files("*")},
			"importincome": {Args: predict.Files("*")},
			"export":       {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
			"exportincome": {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
			"clear":        {},
			"series":       {},
			"breakdown":    {},
			"pivot":        {},
			"stocks":       {},
			"comment":      {},
			"topic":        {Args: predict.Set{"readme", "import", "reports", "rates", "storage", "*"}},
		},
	}
	spec.Complete("nwt")
}

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	completion()

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
