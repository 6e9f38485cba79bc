package networth

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for tests to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// item is a helper for tests to build an asset item without ids.
func item(category, name string, value float64, currency string) AssetItem {
	return AssetItem{ID: NewID(), Category: category, Name: name, Value: value, Currency: currency}
}

// snap is a helper for tests to build a snapshot with a raw total.
func snap(day, member string, items ...AssetItem) Snapshot {
	total := 0.0
	for _, it := range items {
		total += it.Value
	}
	return Snapshot{
		ID:           NewID(),
		Date:         MustParseDate(day),
		FamilyMember: member,
		Items:        items,
		TotalValue:   total,
	}
}

// income is a helper for tests to build an income record.
func income(day, category, name string, value float64, currency, member string) IncomeRecord {
	return IncomeRecord{
		ID:           NewID(),
		Date:         MustParseDate(day),
		Category:     category,
		Name:         name,
		Value:        value,
		Currency:     currency,
		FamilyMember: member,
	}
}
