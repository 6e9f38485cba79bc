package renderer

import (
	"github.com/tmasc/networth"
)

// SeriesView is the display-ready form of a SeriesReport.
type SeriesView struct {
	Title string
	Lines []string
}

// NewSeriesView formats the series as a date-by-key markdown table.
func NewSeriesView(r *networth.SeriesReport, title string) *SeriesView {
	header := append([]string{"Date"}, r.Keys...)
	header = append(header, "Total")

	rows := make([][]string, 0, len(r.Points))
	for _, p := range r.Points {
		row := make([]string, 0, len(header))
		row = append(row, p.Date.String())
		for _, key := range r.Keys {
			if v, ok := p.Values[key]; ok {
				row = append(row, v.String())
			} else {
				row = append(row, "-")
			}
		}
		row = append(row, p.Total.String())
		rows = append(rows, row)
	}

	return &SeriesView{Title: title, Lines: tableLines(header, rows)}
}
