package renderer

import "github.com/tmasc/networth"

// RenderPivot renders the pivot table report to a markdown string.
func RenderPivot(r *networth.PivotReport, title string) string {
	return renderTemplate("pivot", "pivot.md", nil, NewPivotView(r, title))
}
