package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/tmasc/networth"
	"github.com/tmasc/networth/renderer"
)

type pivotCmd struct {
	filterFlags
	income bool
}

func (*pivotCmd) Name() string     { return "pivot" }
func (*pivotCmd) Synopsis() string { return "display the date-by-asset pivot table" }
func (*pivotCmd) Usage() string {
	return `nwt pivot [-member <name>] [-category <name>] [-start YYYY-MM] [-end YYYY-MM] [-income]

  Displays the full matrix of dates by assets. A blank cell means the
  asset has no row on that date, which is not a zero value. The footer
  repeats the per-column totals.
`
}

func (c *pivotCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.BoolVar(&c.income, "income", false, "Pivot income records instead of snapshots")
}

func (c *pivotCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := DecodeStoreFile()
	if err != nil {
		return fail(err)
	}
	rates, err := AppRates()
	if err != nil {
		return fail(err)
	}

	var report *networth.PivotReport
	title := "Net Worth Pivot"
	if c.income {
		report = networth.NewIncomePivot(store.Income, c.filter(), rates)
		title = "Income Pivot"
	} else {
		report = networth.NewSnapshotPivot(store.Snapshots, c.filter(), rates)
	}

	printMarkdown(renderer.RenderPivot(report, title))
	return subcommands.ExitSuccess
}
