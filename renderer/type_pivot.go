package renderer

import (
	"github.com/tmasc/networth"
)

// PivotView is the display-ready form of a PivotReport.
type PivotView struct {
	Title string
	Lines []string
}

// NewPivotView formats the pivot matrix. Cells without a value keep the
// "-" placeholder so "no holdings" stays distinguishable from zero.
func NewPivotView(r *networth.PivotReport, title string) *PivotView {
	header := append([]string{"Date"}, r.Columns...)
	header = append(header, "Total")

	rows := make([][]string, 0, len(r.Rows)+1)
	for _, pr := range r.Rows {
		row := make([]string, 0, len(header))
		row = append(row, pr.Date.String())
		for _, cell := range pr.Cells {
			if cell.Valid {
				row = append(row, cell.Value.String())
			} else {
				row = append(row, "-")
			}
		}
		row = append(row, pr.Total.String())
		rows = append(rows, row)
	}

	// column subtotal footer
	if len(r.Rows) > 0 {
		footer := []string{"Total"}
		var grand networth.Money
		for _, total := range r.ColumnTotals() {
			footer = append(footer, total.String())
			grand = grand.Add(total)
		}
		footer = append(footer, grand.String())
		rows = append(rows, footer)
	}

	return &PivotView{Title: title, Lines: tableLines(header, rows)}
}
