package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/tmasc/networth"
	"github.com/tmasc/networth/renderer"
)

// seriesCmd holds the flags for the 'series' subcommand.
type seriesCmd struct {
	filterFlags
	income  bool
	jsonOut bool
}

func (*seriesCmd) Name() string     { return "series" }
func (*seriesCmd) Synopsis() string { return "display the net-worth time series" }
func (*seriesCmd) Usage() string {
	return `nwt series [-member <name>] [-category <name>] [-start YYYY-MM] [-end YYYY-MM] [-income] [-json]

  Displays one row per date with a column per category and a normalized
  total. Selecting a single category pivots by asset name instead, to
  drill into the category. -income reports income records. -json emits
  the points as a JSON array for charting.
`
}

func (c *seriesCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.BoolVar(&c.income, "income", false, "Report income records instead of snapshots")
	f.BoolVar(&c.jsonOut, "json", false, "Emit the series as JSON")
}

func (c *seriesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := DecodeStoreFile()
	if err != nil {
		return fail(err)
	}
	rates, err := AppRates()
	if err != nil {
		return fail(err)
	}

	var report *networth.SeriesReport
	title := "Net Worth Series"
	if c.income {
		report = networth.NewIncomeSeries(store.Income, c.filter(), rates)
		title = "Income Series"
	} else {
		report = networth.NewSnapshotSeries(store.Snapshots, c.filter(), rates)
	}

	if c.jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report.Points); err != nil {
			return fail(err)
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderSeries(report, title))
	return subcommands.ExitSuccess
}
