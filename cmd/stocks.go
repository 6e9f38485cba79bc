package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/tmasc/networth"
	"github.com/tmasc/networth/renderer"
)

type stocksCmd struct{}

func (*stocksCmd) Name() string     { return "stocks" }
func (*stocksCmd) Synopsis() string { return "display the stock positions valuation" }
func (*stocksCmd) Usage() string {
	return `nwt stocks

  Values each stock position at its current price and reports the gain
  against average cost, normalized to the reference currency.
`
}

func (*stocksCmd) SetFlags(_ *flag.FlagSet) {}

func (c *stocksCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := DecodeStoreFile()
	if err != nil {
		return fail(err)
	}
	rates, err := AppRates()
	if err != nil {
		return fail(err)
	}

	report := networth.NewStockReport(store.Stocks, rates)
	printMarkdown(renderer.RenderStocks(report))
	return subcommands.ExitSuccess
}
