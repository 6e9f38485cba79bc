package networth

import (
	"encoding/json"
	"testing"
)

func TestNewSnapshotSeries_Example(t *testing.T) {
	snapshots := []Snapshot{
		snap("2024-01-01", "Me", item("Bank", "Chase", 1000, "USD")),
		snap("2024-02-01", "Me", item("Bank", "Chase", 1200, "USD")),
	}

	report := NewSnapshotSeries(snapshots, Filter{Member: All, Category: All}, DefaultRates())
	if len(report.Points) != 2 {
		t.Fatalf("series has %d points, want 2", len(report.Points))
	}

	p0 := report.Points[0]
	if p0.Date.String() != "2024-01-01" || !p0.Values["Bank"].Equal(USD(1000)) || !p0.Total.Equal(USD(1000)) {
		t.Errorf("first point = %+v, want Bank:1000 total:1000", p0)
	}
	p1 := report.Points[1]
	if p1.Date.String() != "2024-02-01" || !p1.Values["Bank"].Equal(USD(1200)) || !p1.Total.Equal(USD(1200)) {
		t.Errorf("second point = %+v, want Bank:1200 total:1200", p1)
	}
}

func TestNewSnapshotSeries_TotalInvariant(t *testing.T) {
	// Sum of all per-date totals must equal the normalized sum of every
	// item matching the filter: no double counting, no drops.
	snapshots := []Snapshot{
		snap("2024-01-01", "Me",
			item("Bank", "Chase", 1000, "USD"),
			item("Bank", "Revolut", 200, "EUR"),
			item("Stock", "VT", 500, "USD"),
		),
		snap("2024-01-01", "Spouse", item("Bank", "HSBC", 300, "USD")),
		snap("2024-02-01", "Me", item("Loan", "Mortgage", -800, "USD")),
	}
	f := Filter{Member: All, Category: All}
	rates := DefaultRates()

	var direct Money
	for _, s := range snapshots {
		for _, it := range s.Items {
			direct = direct.Add(rates.Normalize(M(it.Value, it.Currency)))
		}
	}

	var fromSeries Money
	for _, p := range NewSnapshotSeries(snapshots, f, rates).Points {
		fromSeries = fromSeries.Add(p.Total)
		// and per point, total equals the sum of its per-key values
		var keysum Money
		for _, v := range p.Values {
			keysum = keysum.Add(v)
		}
		if !keysum.Equal(p.Total) {
			t.Errorf("point %s: key sum %v != total %v", p.Date, keysum, p.Total)
		}
	}

	if !fromSeries.Equal(direct) {
		t.Errorf("series grand total %v != direct normalized sum %v", fromSeries, direct)
	}
}

func TestNewSnapshotSeries_Normalization(t *testing.T) {
	snapshots := []Snapshot{
		snap("2024-01-01", "Me", item("Bank", "Revolut", 100, "EUR")),
	}
	report := NewSnapshotSeries(snapshots, Filter{}, DefaultRates())
	if len(report.Points) != 1 {
		t.Fatalf("series has %d points, want 1", len(report.Points))
	}
	if !report.Points[0].Total.Equal(USD(108)) {
		t.Errorf("total = %v, want 100 EUR normalized to 108 USD", report.Points[0].Total)
	}
}

func TestNewSnapshotSeries_DrillIn(t *testing.T) {
	snapshots := []Snapshot{
		snap("2024-01-01", "Me",
			item("Bank", "Chase", 1000, "USD"),
			item("Bank", "HSBC", 500, "USD"),
			item("Stock", "VT", 200, "USD"),
		),
	}

	report := NewSnapshotSeries(snapshots, Filter{Category: "Bank"}, DefaultRates())
	p := report.Points[0]
	if !p.Values["Chase"].Equal(USD(1000)) || !p.Values["HSBC"].Equal(USD(500)) {
		t.Errorf("drilled-in keys = %+v, want item names", p.Values)
	}
	if _, ok := p.Values["VT"]; ok {
		t.Error("items of other categories must not contribute once drilled in")
	}
	if !p.Total.Equal(USD(1500)) {
		t.Errorf("total = %v, want 1500 (Bank items only)", p.Total)
	}
}

func TestNewIncomeSeries(t *testing.T) {
	records := []IncomeRecord{
		income("2024-01-05", "Dividend", "VT", 100, "USD", "Me"),
		income("2024-01-05", "Interest", "Savings", 50, "USD", "Me"),
		income("2024-02-05", "Dividend", "VT", 100, "USD", "Spouse"),
	}

	report := NewIncomeSeries(records, Filter{Member: "Me"}, DefaultRates())
	if len(report.Points) != 1 {
		t.Fatalf("series has %d points, want 1 (Spouse filtered out)", len(report.Points))
	}
	if !report.Points[0].Total.Equal(USD(150)) {
		t.Errorf("total = %v, want 150", report.Points[0].Total)
	}
}

func TestSeriesPoint_MarshalJSON(t *testing.T) {
	snapshots := []Snapshot{
		snap("2024-01-01", "Me", item("Bank", "Chase", 1000, "USD")),
	}
	report := NewSnapshotSeries(snapshots, Filter{}, DefaultRates())

	data, err := json.Marshal(report.Points[0])
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"date":"2024-01-01","Bank":1000,"total":1000}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}
