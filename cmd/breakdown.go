package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/tmasc/networth"
	"github.com/tmasc/networth/renderer"
)

type breakdownCmd struct {
	filterFlags
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "display the composition of the latest snapshot" }
func (*breakdownCmd) Usage() string {
	return `nwt breakdown [-member <name>] [-category <name>] [-start YYYY-MM] [-end YYYY-MM]

  Displays assets and liabilities of the most recent snapshot in range,
  largest first. The ten largest entries are listed, the remainder is
  collapsed into an 'Others' line.
`
}

func (c *breakdownCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
}

func (c *breakdownCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := DecodeStoreFile()
	if err != nil {
		return fail(err)
	}
	rates, err := AppRates()
	if err != nil {
		return fail(err)
	}

	report := networth.NewBreakdown(store.Snapshots, c.filter(), rates)
	printMarkdown(renderer.RenderBreakdown(report))
	return subcommands.ExitSuccess
}
