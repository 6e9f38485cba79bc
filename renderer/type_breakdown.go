package renderer

import (
	"github.com/tmasc/networth"
)

// BreakdownView is the display-ready form of a BreakdownReport.
type BreakdownView struct {
	Date             string
	AssetLines       []string
	LiabilityLines   []string
	TotalAssets      string
	TotalLiabilities string
	NetTotal         string
}

// NewBreakdownView formats both partitions of the breakdown.
func NewBreakdownView(r *networth.BreakdownReport) *BreakdownView {
	view := &BreakdownView{
		Date:             r.Date.String(),
		AssetLines:       entryLines(r.Assets),
		LiabilityLines:   entryLines(r.Liabilities),
		TotalAssets:      r.TotalAssets().String(),
		TotalLiabilities: r.TotalLiabilities().String(),
		NetTotal:         r.NetTotal().String(),
	}
	return view
}

func entryLines(entries []networth.BreakdownEntry) []string {
	if len(entries) == 0 {
		return nil
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Name, e.Original.String()})
	}
	return tableLines([]string{"Name", "Value"}, rows)
}
