package networth

// StockValuation is the valued view of one brokerage position, normalized
// through the same rate table as every other report.
type StockValuation struct {
	Ticker      string
	Quantity    Quantity
	Cost        Money
	MarketValue Money
	Gain        Money
}

// StockReport values a list of stock positions.
type StockReport struct {
	Positions  []StockValuation
	TotalCost  Money
	TotalValue Money
	TotalGain  Money
}

// NewStockReport values every position at its current price and reports
// the unrealized gain against average cost.
func NewStockReport(positions []StockPosition, rates RateTable) *StockReport {
	report := &StockReport{}
	for _, p := range positions {
		cost := rates.Normalize(M(p.AvgCost, p.Currency).Mul(p.Quantity))
		value := rates.Normalize(M(p.CurrentPrice, p.Currency).Mul(p.Quantity))
		v := StockValuation{
			Ticker:      p.Ticker,
			Quantity:    p.Quantity,
			Cost:        cost,
			MarketValue: value,
			Gain:        value.Sub(cost),
		}
		report.Positions = append(report.Positions, v)
		report.TotalCost = report.TotalCost.Add(cost)
		report.TotalValue = report.TotalValue.Add(value)
		report.TotalGain = report.TotalGain.Add(v.Gain)
	}
	return report
}
