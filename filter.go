package networth

// Filter is the selection applied to snapshots and income records before
// any aggregation. The zero value (or "All") matches everything.
//
// StartMonth and EndMonth are "YYYY-MM" strings. The range check compares
// ISO date strings lexicographically against startMonth-01 and endMonth-31,
// which is equivalent to chronological order for zero-padded dates, and a
// "-31" upper bound covers the last day of every month. Malformed dates
// simply fail the comparison, they never raise an error.
type Filter struct {
	Member     string
	Category   string
	StartMonth string
	EndMonth   string
}

// matchMember reports whether a record's family member passes the filter.
func (f Filter) matchMember(member string) bool {
	return f.Member == "" || f.Member == All || f.Member == member
}

// matchDate reports whether an ISO date string falls in the month range.
func (f Filter) matchDate(date string) bool {
	if f.StartMonth != "" && date < f.StartMonth+"-01" {
		return false
	}
	if f.EndMonth != "" && date > f.EndMonth+"-31" {
		return false
	}
	return true
}

// matchCategory reports whether a category passes the filter.
func (f Filter) matchCategory(category string) bool {
	return f.Category == "" || f.Category == All || f.Category == category
}

// MatchSnapshot reports whether the snapshot passes the filter: the family
// member matches, the date is in range, and, when a category is selected,
// at least one item carries it.
func (f Filter) MatchSnapshot(s Snapshot) bool {
	if !f.matchMember(s.FamilyMember) || !f.matchDate(s.Date.String()) {
		return false
	}
	if f.Category == "" || f.Category == All {
		return true
	}
	for _, item := range s.Items {
		if item.Category == f.Category {
			return true
		}
	}
	return false
}

// MatchIncome reports whether the income record passes the filter. Unlike
// snapshots the category match is a direct field equality.
func (f Filter) MatchIncome(rec IncomeRecord) bool {
	return f.matchMember(rec.FamilyMember) &&
		f.matchCategory(rec.Category) &&
		f.matchDate(rec.Date.String())
}

// MatchItem reports whether an item inside an already matching snapshot
// contributes to aggregation.
func (f Filter) MatchItem(item AssetItem) bool {
	return f.matchCategory(item.Category)
}

// PivotKey returns the time-series key an item contributes to: its category
// while browsing all categories, its name once a single category is
// selected, so charts drill into sub-items.
func (f Filter) PivotKey(category, name string) string {
	if f.Category == "" || f.Category == All {
		return category
	}
	return name
}
