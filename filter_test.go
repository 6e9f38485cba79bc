package networth

import "testing"

func TestFilter_MatchSnapshot(t *testing.T) {
	s := snap("2024-03-15", "Me",
		item("Bank", "Chase", 1000, "USD"),
		item("Stock", "VT", 500, "USD"),
	)

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"zero filter matches", Filter{}, true},
		{"all wildcards match", Filter{Member: All, Category: All}, true},
		{"member match", Filter{Member: "Me"}, true},
		{"member mismatch", Filter{Member: "Spouse"}, false},
		{"category on any item", Filter{Category: "Stock"}, true},
		{"category absent from items", Filter{Category: "Crypto"}, false},
		{"inside month range", Filter{StartMonth: "2024-03", EndMonth: "2024-03"}, true},
		{"before range", Filter{StartMonth: "2024-04"}, false},
		{"after range", Filter{EndMonth: "2024-02"}, false},
		{"open start", Filter{EndMonth: "2024-12"}, true},
		{"range end covers day 31", Filter{StartMonth: "2024-01", EndMonth: "2024-03"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.MatchSnapshot(s); got != tt.want {
				t.Errorf("MatchSnapshot() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_MatchIncome(t *testing.T) {
	rec := income("2024-03-15", "Dividend", "VT", 120, "USD", "Me")

	if !(Filter{Category: "Dividend"}).MatchIncome(rec) {
		t.Error("direct category equality should match")
	}
	if (Filter{Category: "Bank"}).MatchIncome(rec) {
		t.Error("income category match is a field equality, not item scan")
	}
	if !(Filter{Member: All, Category: All, StartMonth: "2024-01", EndMonth: "2024-06"}).MatchIncome(rec) {
		t.Error("record inside range should match")
	}
}

func TestFilter_MalformedDatesNeverPanic(t *testing.T) {
	// The range check is a plain string comparison: a malformed month
	// bound fails comparisons without crashing.
	f := Filter{StartMonth: "not-a-month"}
	s := snap("2024-03-15", "Me", item("Bank", "Chase", 1, "USD"))
	// Must not panic; the result only needs to be deterministic.
	_ = f.MatchSnapshot(s)
	_ = f.MatchIncome(income("2024-03-15", "X", "Y", 1, "USD", "Me"))
}

func TestFilter_PivotKey(t *testing.T) {
	if got := (Filter{Category: All}).PivotKey("Bank", "Chase"); got != "Bank" {
		t.Errorf("PivotKey() = %q, want category while browsing all", got)
	}
	if got := (Filter{Category: "Bank"}).PivotKey("Bank", "Chase"); got != "Chase" {
		t.Errorf("PivotKey() = %q, want item name once drilled in", got)
	}
}
