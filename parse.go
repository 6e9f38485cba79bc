package networth

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// StagedRow is one bulk-import line after parsing, before it is merged
// into the snapshot or income collections.
type StagedRow struct {
	ID           string  `json:"id"`
	Date         Date    `json:"date"`
	Category     string  `json:"category"`
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	FamilyMember string  `json:"familyMember"`
	Currency     string  `json:"currency"`
}

// valueCleanRE strips everything but digits, dot and minus before the
// numeric parse, so "NT$1,200.50" reads as 1200.50.
var valueCleanRE = regexp.MustCompile(`[^0-9.\-]`)

// ParseAssetRows parses bulk asset-import text into staged rows.
//
// Each line is one record, tab-delimited when a tab is present, otherwise
// comma-delimited, in the order date, category, name, value, familyMember,
// currency. Trailing columns are optional: a blank category becomes
// "Other" (reusing the canonical casing of a known category), a blank name
// falls back to the category, member and currency default to the first
// known family member and "USD".
//
// Parsing never fails: an unreadable date is replaced by today, and a row
// with fewer than 3 columns or an unreadable value is silently dropped.
// Callers that need to show what was imported display the returned rows.
func ParseAssetRows(r io.Reader, reg Registry) []StagedRow {
	return parseRows(r, "Other", reg, true)
}

// ParseIncomeRows parses bulk income-import text into staged rows. Same
// format and defaults as ParseAssetRows, except a blank category becomes
// "Income" and is taken literally.
func ParseIncomeRows(r io.Reader, reg Registry) []StagedRow {
	return parseRows(r, "Income", reg, false)
}

func parseRows(r io.Reader, defaultCategory string, reg Registry, canonicalize bool) []StagedRow {
	rows := make([]StagedRow, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		row, ok := parseRow(line, defaultCategory, reg, canonicalize)
		if !ok {
			continue // silent-drop policy, see package doc
		}
		rows = append(rows, row)
	}
	return rows
}

func parseRow(line, defaultCategory string, reg Registry, canonicalize bool) (StagedRow, bool) {
	delimiter := ","
	if strings.Contains(line, "\t") {
		delimiter = "\t"
	}
	cols := strings.Split(line, delimiter)
	if len(cols) < 3 {
		return StagedRow{}, false
	}
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	col := func(i int) string {
		if i < len(cols) {
			return cols[i]
		}
		return ""
	}

	// Fallback branch: an unparseable date is today's, not an error.
	on, err := ParseDate(col(0))
	if err != nil {
		on = Today()
	}

	category := col(1)
	if category == "" {
		category = defaultCategory
	} else if canonicalize {
		if known, ok := reg.CanonicalCategory(category); ok {
			category = known
		}
	}

	name := col(2)
	if name == "" {
		name = category
	}

	value, err := strconv.ParseFloat(valueCleanRE.ReplaceAllString(col(3), ""), 64)
	if err != nil {
		return StagedRow{}, false
	}

	member := col(4)
	if member == "" {
		member = reg.FirstMember()
	}
	currency := col(5)
	if currency == "" {
		currency = "USD"
	}

	return StagedRow{
		ID:           NewID(),
		Date:         on,
		Category:     category,
		Name:         name,
		Value:        value,
		FamilyMember: member,
		Currency:     currency,
	}, true
}
