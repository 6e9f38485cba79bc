package networth

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// this file contains the flat CSV export and the one-call bulk import
// helpers built on the row parser and the merge engine.

// csvHeader is the fixed export header, shared by both variants.
const csvHeader = "Date,Category,Name,Value,Family Member,Currency"

// csvField strips commas from free text, replacing them with spaces.
// This is a deliberately lossy sanitation, not CSV quoting: downstream
// consumers of the historic format count columns by splitting on commas.
func csvField(s string) string {
	return strings.ReplaceAll(s, ",", " ")
}

func csvValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ExportAssetsCSV writes one row per asset item, flattened across all
// snapshots, in the historic export format.
func ExportAssetsCSV(w io.Writer, snapshots []Snapshot) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return fmt.Errorf("cannot write export header: %w", err)
	}
	for _, s := range snapshots {
		for _, item := range s.Items {
			row := strings.Join([]string{
				s.Date.String(),
				csvField(item.Category),
				csvField(item.Name),
				csvValue(item.Value),
				csvField(s.FamilyMember),
				csvField(item.Currency),
			}, ",")
			if _, err := fmt.Fprintln(w, row); err != nil {
				return fmt.Errorf("cannot write export row: %w", err)
			}
		}
	}
	return nil
}

// ExportIncomeCSV writes one row per income record in the historic export format.
func ExportIncomeCSV(w io.Writer, records []IncomeRecord) error {
	if _, err := fmt.Fprintln(w, csvHeader); err != nil {
		return fmt.Errorf("cannot write export header: %w", err)
	}
	for _, rec := range records {
		row := strings.Join([]string{
			rec.Date.String(),
			csvField(rec.Category),
			csvField(rec.Name),
			csvValue(rec.Value),
			csvField(rec.FamilyMember),
			csvField(rec.Currency),
		}, ",")
		if _, err := fmt.Fprintln(w, row); err != nil {
			return fmt.Errorf("cannot write export row: %w", err)
		}
	}
	return nil
}

// ImportAssets parses bulk asset text and merges it into the snapshots in
// one call. See ParseAssetRows and MergeStagedRows for the exact rules.
func ImportAssets(r io.Reader, snapshots []Snapshot, reg Registry) ([]Snapshot, Registry) {
	return MergeStagedRows(snapshots, ParseAssetRows(r, reg), reg)
}

// ImportIncome parses bulk income text and appends it to the records.
func ImportIncome(r io.Reader, records []IncomeRecord, reg Registry) ([]IncomeRecord, Registry) {
	return MergeIncomeRows(records, ParseIncomeRows(r, reg), reg)
}
