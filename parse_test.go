package networth

import (
	"strings"
	"testing"
)

func TestParseAssetRows_Basics(t *testing.T) {
	reg := Registry{Categories: []string{"Bank", "Stock"}, Members: []string{"Me", "Spouse"}}
	text := "2024-01-01,Bank,Chase,1000,Me,USD\n" +
		"2024-01-01\tStock\tVT\t2 500.50\tSpouse\tEUR\n"

	rows := ParseAssetRows(strings.NewReader(text), reg)
	if len(rows) != 2 {
		t.Fatalf("ParseAssetRows() returned %d rows, want 2", len(rows))
	}

	if rows[0].Date.String() != "2024-01-01" || rows[0].Category != "Bank" ||
		rows[0].Name != "Chase" || rows[0].Value != 1000 ||
		rows[0].FamilyMember != "Me" || rows[0].Currency != "USD" {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Value != 2500.50 {
		t.Errorf("tab-delimited value = %v, want 2500.50 after cleaning", rows[1].Value)
	}
	if rows[0].ID == "" || rows[0].ID == rows[1].ID {
		t.Error("rows must carry fresh unique ids")
	}
}

func TestParseAssetRows_Defaults(t *testing.T) {
	reg := Registry{Categories: []string{"Bank"}, Members: []string{"Me"}}

	rows := ParseAssetRows(strings.NewReader("2024-01-01,,,42"), reg)
	if len(rows) != 1 {
		t.Fatalf("ParseAssetRows() returned %d rows, want 1", len(rows))
	}
	row := rows[0]
	if row.Category != "Other" {
		t.Errorf("blank category = %q, want Other", row.Category)
	}
	if row.Name != "Other" {
		t.Errorf("blank name = %q, want the category", row.Name)
	}
	if row.FamilyMember != "Me" {
		t.Errorf("blank member = %q, want first known member", row.FamilyMember)
	}
	if row.Currency != "USD" {
		t.Errorf("blank currency = %q, want USD", row.Currency)
	}
}

func TestParseAssetRows_CanonicalCategoryCasing(t *testing.T) {
	reg := Registry{Categories: []string{"Bank"}}
	rows := ParseAssetRows(strings.NewReader("2024-01-01,bAnK,Chase,10"), reg)
	if len(rows) != 1 || rows[0].Category != "Bank" {
		t.Fatalf("category = %+v, want canonical casing Bank", rows)
	}

	// Income import takes the category literally.
	rows = ParseIncomeRows(strings.NewReader("2024-01-01,bAnK,Chase,10"), reg)
	if len(rows) != 1 || rows[0].Category != "bAnK" {
		t.Fatalf("income category = %+v, want literal bAnK", rows)
	}
}

func TestParseIncomeRows_DefaultCategory(t *testing.T) {
	rows := ParseIncomeRows(strings.NewReader("2024-01-01,,Payout,10"), Registry{})
	if len(rows) != 1 || rows[0].Category != "Income" {
		t.Fatalf("blank income category = %+v, want Income", rows)
	}
}

func TestParseAssetRows_SilentDrops(t *testing.T) {
	reg := Registry{}

	t.Run("unparseable value drops the row", func(t *testing.T) {
		rows := ParseAssetRows(strings.NewReader("not-a-date,Bank,,abc"), reg)
		if len(rows) != 0 {
			t.Fatalf("ParseAssetRows() = %+v, want the row dropped", rows)
		}
	})

	t.Run("unparseable date falls back to today", func(t *testing.T) {
		rows := ParseAssetRows(strings.NewReader("not-a-date,Bank,X,100"), reg)
		if len(rows) != 1 {
			t.Fatalf("ParseAssetRows() returned %d rows, want 1", len(rows))
		}
		if rows[0].Date != Today() {
			t.Errorf("date = %v, want today substituted", rows[0].Date)
		}
		if rows[0].Value != 100 {
			t.Errorf("value = %v, want 100", rows[0].Value)
		}
	})

	t.Run("fewer than 3 columns drops the row", func(t *testing.T) {
		rows := ParseAssetRows(strings.NewReader("2024-01-01,Bank"), reg)
		if len(rows) != 0 {
			t.Fatalf("ParseAssetRows() = %+v, want the row dropped", rows)
		}
	})

	t.Run("blank lines are skipped", func(t *testing.T) {
		rows := ParseAssetRows(strings.NewReader("\n\n2024-01-01,Bank,X,1\n\n"), reg)
		if len(rows) != 1 {
			t.Fatalf("ParseAssetRows() returned %d rows, want 1", len(rows))
		}
	})
}

func TestParseAssetRows_ValueCleaning(t *testing.T) {
	rows := ParseAssetRows(strings.NewReader("2024-01-01,Bank,X,NT$-1 200.50"), Registry{})
	if len(rows) != 1 {
		t.Fatalf("ParseAssetRows() returned %d rows, want 1", len(rows))
	}
	if rows[0].Value != -1200.50 {
		t.Errorf("cleaned value = %v, want -1200.50", rows[0].Value)
	}
}
