package networth

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestNewSummary(t *testing.T) {
	snapshots := []Snapshot{
		snap("2024-01-01", "Me",
			item("Bank", "Chase", 1000, "USD"),
			item("Stock", "VT", 500, "USD"),
		),
		snap("2024-02-01", "Me", item("Bank", "Chase", 1200, "USD")),
	}

	report := NewSummary(snapshots, Filter{Member: All, Category: All}, DefaultRates())
	if report.Member != All {
		t.Errorf("member = %q, want All", report.Member)
	}
	if len(report.Entries) != 2 {
		t.Fatalf("entries = %d, want one per date", len(report.Entries))
	}

	e := report.Entries[0]
	if e.Date.String() != "2024-01-01" || !e.Total.Equal(USD(1500)) {
		t.Errorf("first entry = %+v", e)
	}
	if len(e.Breakdown) != 2 || e.Breakdown[0] != fmt.Sprintf("Bank: %s", USD(1000)) {
		t.Errorf("breakdown = %v", e.Breakdown)
	}
}

func TestNewSummary_KeepsLastTenDates(t *testing.T) {
	var snapshots []Snapshot
	for i := 1; i <= 12; i++ {
		snapshots = append(snapshots, snap(fmt.Sprintf("2024-%02d-01", i), "Me", item("Bank", "Chase", float64(i), "USD")))
	}

	report := NewSummary(snapshots, Filter{}, DefaultRates())
	if len(report.Entries) != 10 {
		t.Fatalf("entries = %d, want the most recent 10", len(report.Entries))
	}
	if report.Entries[0].Date.String() != "2024-03-01" {
		t.Errorf("first kept entry = %v, want the two oldest dropped", report.Entries[0].Date)
	}
	if report.Entries[9].Date.String() != "2024-12-01" {
		t.Errorf("last entry = %v, want the latest date", report.Entries[9].Date)
	}
}

func TestSummaryEntry_MarshalJSON(t *testing.T) {
	snapshots := []Snapshot{
		snap("2024-01-01", "Me", item("Bank", "Chase", 1000, "USD")),
	}
	report := NewSummary(snapshots, Filter{}, DefaultRates())

	data, err := json.Marshal(report.Entries[0])
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := fmt.Sprintf(`{"date":"2024-01-01","total":1000,"breakdown":["Bank: %s"]}`, USD(1000))
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}
