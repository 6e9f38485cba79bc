package renderer

import (
	"github.com/tmasc/networth"
)

// StocksView is the display-ready form of a StockReport.
type StocksView struct {
	Lines      []string
	TotalValue string
	TotalGain  string
}

// NewStocksView formats the stock valuation table.
func NewStocksView(r *networth.StockReport) *StocksView {
	rows := make([][]string, 0, len(r.Positions))
	for _, p := range r.Positions {
		rows = append(rows, []string{
			p.Ticker,
			p.Quantity.String(),
			p.Cost.String(),
			p.MarketValue.String(),
			p.Gain.SignedString(),
		})
	}
	return &StocksView{
		Lines:      tableLines([]string{"Ticker", "Quantity", "Cost", "Market Value", "Gain"}, rows),
		TotalValue: r.TotalValue.String(),
		TotalGain:  r.TotalGain.SignedString(),
	}
}
