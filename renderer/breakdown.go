package renderer

import "github.com/tmasc/networth"

// RenderBreakdown renders the asset/liability breakdown to a markdown string.
func RenderBreakdown(r *networth.BreakdownReport) string {
	partials := map[string]string{
		"breakdown_assets":      "breakdown_assets.md",
		"breakdown_liabilities": "breakdown_liabilities.md",
	}
	return renderTemplate("breakdown", "breakdown.md", partials, NewBreakdownView(r))
}
