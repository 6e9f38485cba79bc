package networth

import (
	"maps"
	"slices"
)

// Cell is one pivot-table cell. Valid is false when no item contributed to
// the (date, column) pair, which renderers must distinguish from a
// zero-value holding.
type Cell struct {
	Value Money
	Valid bool
}

// PivotRow is one date row of the pivot table. Cells align with the
// report's Columns; Total is the normalized sum of the valid cells.
type PivotRow struct {
	Date  Date
	Cells []Cell
	Total Money
}

// PivotReport is a dense date-by-subcategory matrix of normalized values.
// Columns are discovered from the data, never predeclared.
type PivotReport struct {
	Columns []string
	Rows    []PivotRow
}

// NewSnapshotPivot builds the pivot table over filtered snapshots.
//
// Every contributing item yields the column key "name (category)", or
// "category (Misc)" when the name is blank. The distinct keys, sorted
// lexicographically, become the columns; every distinct date becomes a
// row with normalized sums per column.
func NewSnapshotPivot(snapshots []Snapshot, f Filter, rates RateTable) *PivotReport {
	b := newPivotBuilder()
	for _, s := range snapshots {
		if !f.MatchSnapshot(s) {
			continue
		}
		for _, item := range s.Items {
			if !f.MatchItem(item) {
				continue
			}
			b.add(s.Date, pivotColumn(item.Name, item.Category), rates.Normalize(M(item.Value, item.Currency)))
		}
	}
	return b.report()
}

// NewIncomePivot builds the pivot table over filtered income records.
func NewIncomePivot(records []IncomeRecord, f Filter, rates RateTable) *PivotReport {
	b := newPivotBuilder()
	for _, rec := range records {
		if !f.MatchIncome(rec) {
			continue
		}
		b.add(rec.Date, pivotColumn(rec.Name, rec.Category), rates.Normalize(M(rec.Value, rec.Currency)))
	}
	return b.report()
}

// ColumnTotals re-derives per-column totals from the row cells.
func (r *PivotReport) ColumnTotals() []Money {
	totals := make([]Money, len(r.Columns))
	for _, row := range r.Rows {
		for i, cell := range row.Cells {
			if cell.Valid {
				totals[i] = totals[i].Add(cell.Value)
			}
		}
	}
	return totals
}

// pivotColumn derives the dynamic column key of an item.
func pivotColumn(name, category string) string {
	if name == "" {
		return category + " (Misc)"
	}
	return name + " (" + category + ")"
}

type pivotBuilder struct {
	byDate  map[Date]map[string]Money
	columns map[string]struct{}
}

func newPivotBuilder() *pivotBuilder {
	return &pivotBuilder{
		byDate:  make(map[Date]map[string]Money),
		columns: make(map[string]struct{}),
	}
}

func (b *pivotBuilder) add(on Date, column string, value Money) {
	cells, ok := b.byDate[on]
	if !ok {
		cells = make(map[string]Money)
		b.byDate[on] = cells
	}
	cells[column] = cells[column].Add(value)
	b.columns[column] = struct{}{}
}

func (b *pivotBuilder) report() *PivotReport {
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

	report := &PivotReport{
		Columns: slices.Sorted(maps.Keys(b.columns)),
		Rows:    make([]PivotRow, 0, len(dates)),
	}
	for _, on := range dates {
		row := PivotRow{Date: on, Cells: make([]Cell, len(report.Columns))}
		for i, column := range report.Columns {
			value, ok := b.byDate[on][column]
			if !ok {
				continue // absent cell stays the invalid sentinel, not zero
			}
			row.Cells[i] = Cell{Value: value, Valid: true}
			row.Total = row.Total.Add(value)
		}
		report.Rows = append(report.Rows, row)
	}
	return report
}
