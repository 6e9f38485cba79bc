package renderer

import "github.com/tmasc/networth"

// RenderStocks renders the stock valuation report to a markdown string.
func RenderStocks(r *networth.StockReport) string {
	return renderTemplate("stocks", "stocks.md", nil, NewStocksView(r))
}
