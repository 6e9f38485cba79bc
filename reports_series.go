package networth

import (
	"maps"
	"slices"
)

// SeriesPoint is one chart-ready record of a time series: the normalized
// contribution of every pivot key on a date, plus their total.
type SeriesPoint struct {
	Date   Date
	Values map[string]Money
	Total  Money
}

// SeriesReport is a date-ascending, currency-normalized time series for
// area and bar charts.
type SeriesReport struct {
	Keys   []string
	Points []SeriesPoint
}

// NewSnapshotSeries aggregates filtered snapshots into a time series.
//
// The pivot key of an item is chosen by the filter: the category while all
// categories are selected, the item name once the filter narrows to one
// category. Item values are normalized through the rate table before
// summing, so each point's Total is the normalized sum of its Values.
func NewSnapshotSeries(snapshots []Snapshot, f Filter, rates RateTable) *SeriesReport {
	b := newSeriesBuilder()
	for _, s := range snapshots {
		if !f.MatchSnapshot(s) {
			continue
		}
		for _, item := range s.Items {
			if !f.MatchItem(item) {
				continue
			}
			b.add(s.Date, f.PivotKey(item.Category, item.Name), rates.Normalize(M(item.Value, item.Currency)))
		}
	}
	return b.report()
}

// NewIncomeSeries aggregates filtered income records into a time series,
// with the same pivot-key rule as snapshots.
func NewIncomeSeries(records []IncomeRecord, f Filter, rates RateTable) *SeriesReport {
	b := newSeriesBuilder()
	for _, rec := range records {
		if !f.MatchIncome(rec) {
			continue
		}
		b.add(rec.Date, f.PivotKey(rec.Category, rec.Name), rates.Normalize(M(rec.Value, rec.Currency)))
	}
	return b.report()
}

// seriesBuilder accumulates normalized values per (date, key).
type seriesBuilder struct {
	byDate map[Date]map[string]Money
	keys   map[string]struct{}
}

func newSeriesBuilder() *seriesBuilder {
	return &seriesBuilder{
		byDate: make(map[Date]map[string]Money),
		keys:   make(map[string]struct{}),
	}
}

func (b *seriesBuilder) add(on Date, key string, value Money) {
	values, ok := b.byDate[on]
	if !ok {
		values = make(map[string]Money)
		b.byDate[on] = values
	}
	values[key] = values[key].Add(value)
	b.keys[key] = struct{}{}
}

func (b *seriesBuilder) report() *SeriesReport {
	dates := slices.Collect(maps.Keys(b.byDate))
	slices.SortFunc(dates, func(a, x Date) int {
		if a.Before(x) {
			return -1
		}
		if a.After(x) {
			return 1
		}
		return 0
	})

	report := &SeriesReport{
		Keys:   slices.Sorted(maps.Keys(b.keys)),
		Points: make([]SeriesPoint, 0, len(dates)),
	}
	for _, on := range dates {
		point := SeriesPoint{Date: on, Values: b.byDate[on]}
		for _, v := range point.Values {
			point.Total = point.Total.Add(v)
		}
		report.Points = append(report.Points, point)
	}
	return report
}

// MarshalJSON renders a point the way charts consume it: one flat object
// with the date, one property per key, and the total.
func (p SeriesPoint) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", p.Date)
	for _, key := range slices.Sorted(maps.Keys(p.Values)) {
		w.Append(key, p.Values[key].AsFloat())
	}
	w.Append("total", p.Total.AsFloat())
	return w.MarshalJSON()
}
