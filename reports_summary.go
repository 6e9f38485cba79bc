package networth

import (
	"fmt"
	"maps"
	"slices"
)

// summaryDepth is how many recent snapshot dates the commentary summary covers.
const summaryDepth = 10

// SummaryEntry is one dated line of the commentary summary: the normalized
// net total and a per-category breakdown rendered as "category: value"
// strings, the shape the commentary collaborator expects.
type SummaryEntry struct {
	Date      Date
	Total     Money
	Breakdown []string
}

// SummaryReport is the normalized last-10-snapshot digest handed to the
// AI commentary collaborator. It carries no raw records, only aggregates.
type SummaryReport struct {
	Member  string
	Entries []SummaryEntry
}

// NewSummary digests the filtered snapshots into the commentary summary.
// Dates are ascending; only the most recent summaryDepth dates are kept.
func NewSummary(snapshots []Snapshot, f Filter, rates RateTable) *SummaryReport {
	byDate := make(map[Date]map[string]Money)
	for _, s := range snapshots {
		if !f.MatchSnapshot(s) {
			continue
		}
		for _, item := range s.Items {
			if !f.MatchItem(item) {
				continue
			}
			categories, ok := byDate[s.Date]
			if !ok {
				categories = make(map[string]Money)
				byDate[s.Date] = categories
			}
			categories[item.Category] = categories[item.Category].Add(rates.Normalize(M(item.Value, item.Currency)))
		}
	}

	dates := slices.Collect(maps.Keys(byDate))
	slices.SortFunc(dates, func(a, x Date) int {
		if a.Before(x) {
			return -1
		}
		if a.After(x) {
			return 1
		}
		return 0
	})
	if len(dates) > summaryDepth {
		dates = dates[len(dates)-summaryDepth:]
	}

	member := f.Member
	if member == "" {
		member = All
	}
	report := &SummaryReport{Member: member}
	for _, on := range dates {
		entry := SummaryEntry{Date: on}
		for _, category := range slices.Sorted(maps.Keys(byDate[on])) {
			value := byDate[on][category]
			entry.Total = entry.Total.Add(value)
			entry.Breakdown = append(entry.Breakdown, fmt.Sprintf("%s: %s", category, value))
		}
		report.Entries = append(report.Entries, entry)
	}
	return report
}

func (e SummaryEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", e.Date)
	w.Append("total", e.Total.AsFloat())
	w.Append("breakdown", e.Breakdown)
	return w.MarshalJSON()
}
