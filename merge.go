package networth

import (
	"log"
)

// MergeStagedRows folds staged asset rows into the snapshot collection.
//
// Rows are grouped by (date, familyMember). Each group becomes the full
// item list of the snapshot for that key: an existing snapshot has its
// items and total replaced wholesale, otherwise a new snapshot is
// appended. The total is the raw, unconverted sum of item values.
//
// Categories and family members discovered in the rows are appended to
// the registry; it only ever grows. The input collection is not mutated,
// a new one is returned along with the updated registry.
//
// Re-importing the same text is idempotent at the (date, familyMember)
// granularity: the second import overwrites, it never duplicates.
func MergeStagedRows(snapshots []Snapshot, rows []StagedRow, reg Registry) ([]Snapshot, Registry) {
	type group struct {
		date   Date
		member string
		items  []AssetItem
		total  float64
	}

	// Group rows by composite key, keeping first-appearance order.
	keys := make([]string, 0)
	groups := make(map[string]*group)
	for _, row := range rows {
		key := row.Date.String() + "::" + row.FamilyMember
		g, ok := groups[key]
		if !ok {
			g = &group{date: row.Date, member: row.FamilyMember}
			groups[key] = g
			keys = append(keys, key)
		}
		g.items = append(g.items, AssetItem{
			ID:       NewID(),
			Category: row.Category,
			Name:     row.Name,
			Value:    row.Value,
			Currency: row.Currency,
		})
		g.total += row.Value

		reg = reg.WithCategory(row.Category).WithMember(row.FamilyMember)
	}

	merged := append([]Snapshot(nil), snapshots...)
	for _, key := range keys {
		g := groups[key]

		replaced := false
		for i, s := range merged {
			if s.Date == g.date && s.FamilyMember == g.member {
				log.Printf("%v: replacing snapshot for %q with %d imported items", g.date, g.member, len(g.items))
				s.Items = g.items
				s.TotalValue = g.total
				s.Note = "Updated via bulk import"
				merged[i] = s
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, Snapshot{
				ID:           NewID(),
				Date:         g.date,
				FamilyMember: g.member,
				Items:        g.items,
				TotalValue:   g.total,
				Note:         "Created via bulk import",
			})
		}
	}
	return merged, reg
}

// MergeIncomeRows folds staged income rows into the income collection.
// Income events have no per-key overwrite semantics: each row becomes a
// new record. The registry grows the same way as for asset imports.
func MergeIncomeRows(records []IncomeRecord, rows []StagedRow, reg Registry) ([]IncomeRecord, Registry) {
	merged := append([]IncomeRecord(nil), records...)
	for _, row := range rows {
		merged = append(merged, IncomeRecord{
			ID:           NewID(),
			Date:         row.Date,
			Category:     row.Category,
			Name:         row.Name,
			Value:        row.Value,
			Currency:     row.Currency,
			FamilyMember: row.FamilyMember,
		})
		reg = reg.WithCategory(row.Category).WithMember(row.FamilyMember)
	}
	return merged, reg
}
