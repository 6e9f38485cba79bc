package renderer

import "github.com/tmasc/networth"

// RenderSeries renders the time-series report to a markdown string.
func RenderSeries(r *networth.SeriesReport, title string) string {
	return renderTemplate("series", "series.md", nil, NewSeriesView(r, title))
}
