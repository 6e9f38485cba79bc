package networth

import (
	"maps"
	"slices"
)

// breakdownCap is the number of entries kept in each partition before the
// long tail collapses into a single "Others" entry.
const breakdownCap = 10

// OthersName is the name of the synthetic long-tail entry.
const OthersName = "Others"

// BreakdownEntry is one slice of the asset or liability composition.
// Value is the normalized magnitude used for chart-slice sizing; Original
// keeps the signed normalized amount for display.
type BreakdownEntry struct {
	Name     string
	Value    Money
	Original Money
}

// BreakdownReport is the asset/liability composition at the most recent
// date matching the filter. Both partitions are sorted by descending
// magnitude and capped with an "Others" bucket.
type BreakdownReport struct {
	Date        Date
	Assets      []BreakdownEntry
	Liabilities []BreakdownEntry
}

// NewBreakdown aggregates the latest matching snapshots by item name.
//
// The latest date is found among snapshots passing the member and range
// parts of the filter; the category part then selects which items on that
// date contribute. Items aggregate by name, falling back to the category
// when the name is blank.
func NewBreakdown(snapshots []Snapshot, f Filter, rates RateTable) *BreakdownReport {
	scope := Filter{Member: f.Member, StartMonth: f.StartMonth, EndMonth: f.EndMonth}

	var latest Date
	for _, s := range snapshots {
		if scope.MatchSnapshot(s) && (latest.IsZero() || s.Date.After(latest)) {
			latest = s.Date
		}
	}
	report := &BreakdownReport{Date: latest}
	if latest.IsZero() {
		return report
	}

	byName := make(map[string]Money)
	for _, s := range snapshots {
		if !scope.MatchSnapshot(s) || s.Date != latest {
			continue
		}
		for _, item := range s.Items {
			if !f.MatchItem(item) {
				continue
			}
			name := item.Name
			if name == "" {
				name = item.Category
			}
			byName[name] = byName[name].Add(rates.Normalize(M(item.Value, item.Currency)))
		}
	}

	var assets, liabilities []BreakdownEntry
	for _, name := range slices.Sorted(maps.Keys(byName)) {
		value := byName[name]
		entry := BreakdownEntry{Name: name, Value: value.Abs(), Original: value}
		switch {
		case value.IsPositive():
			assets = append(assets, entry)
		case value.IsNegative():
			liabilities = append(liabilities, entry)
		}
	}
	report.Assets = capEntries(sortByMagnitude(assets))
	report.Liabilities = capEntries(sortByMagnitude(liabilities))
	return report
}

// TotalAssets returns the signed normalized sum of the assets partition,
// "Others" included.
func (r *BreakdownReport) TotalAssets() Money { return sumOriginals(r.Assets) }

// TotalLiabilities returns the signed normalized sum of the liabilities
// partition; it is negative or zero.
func (r *BreakdownReport) TotalLiabilities() Money { return sumOriginals(r.Liabilities) }

// NetTotal returns assets plus liabilities, the net worth on the report date.
func (r *BreakdownReport) NetTotal() Money {
	return r.TotalAssets().Add(r.TotalLiabilities())
}

func sumOriginals(entries []BreakdownEntry) Money {
	var total Money
	for _, e := range entries {
		total = total.Add(e.Original)
	}
	return total
}

func sortByMagnitude(entries []BreakdownEntry) []BreakdownEntry {
	slices.SortStableFunc(entries, func(a, b BreakdownEntry) int {
		switch {
		case a.Value.GreaterThan(b.Value):
			return -1
		case b.Value.GreaterThan(a.Value):
			return 1
		default:
			return 0
		}
	})
	return entries
}

// capEntries keeps the top entries and collapses the rest into "Others".
// The collapsed value is the signed sum of the originals, so a liability
// bucket stays sign-correct for display.
func capEntries(entries []BreakdownEntry) []BreakdownEntry {
	if len(entries) <= breakdownCap {
		return entries
	}
	kept := entries[:breakdownCap:breakdownCap]
	others := sumOriginals(entries[breakdownCap:])
	return append(kept, BreakdownEntry{Name: OthersName, Value: others.Abs(), Original: others})
}
