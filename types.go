package networth

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// All is the wildcard filter value for family members and categories.
const All = "All"

// NewID returns a fresh unique identifier for a record.
func NewID() string { return uuid.NewString() }

// AssetItem is a single holding inside a snapshot. A negative value marks
// a liability. Value is kept in the item's own currency, unconverted.
type AssetItem struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Name     string   `json:"name"`
	Value    float64  `json:"value"`
	Currency string   `json:"currency"`
	Tags     []string `json:"tags,omitempty"`
}

// Snapshot is a dated bundle of asset holdings for one family member.
//
// TotalValue is the raw sum of item values across currencies, NOT a
// normalized amount. Reports normalize per item and never read it.
type Snapshot struct {
	ID           string      `json:"id"`
	Date         Date        `json:"date"`
	FamilyMember string      `json:"familyMember"`
	Items        []AssetItem `json:"items"`
	Note         string      `json:"note,omitempty"`
	TotalValue   float64     `json:"totalValue"`
}

// IncomeRecord is a single investment-income event. It lives in its own
// collection, independent from snapshots.
type IncomeRecord struct {
	ID           string  `json:"id"`
	Date         Date    `json:"date"`
	Category     string  `json:"category"`
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	Currency     string  `json:"currency"`
	FamilyMember string  `json:"familyMember"`
}

// StockPosition is a brokerage position fed to the stock valuation view.
type StockPosition struct {
	ID           string   `json:"id"`
	Ticker       string   `json:"ticker"`
	Quantity     Quantity `json:"quantity"`
	AvgCost      float64  `json:"avgCost"`
	CurrentPrice float64  `json:"currentPrice"`
	Currency     string   `json:"currency"`
}

// Registry holds the known category and family-member names. It grows
// monotonically through imports and is passed by value: operations that
// discover new names return an updated copy, the caller persists it.
type Registry struct {
	Categories []string `json:"categories"`
	Members    []string `json:"members"`
}

// WithCategory returns a registry that contains the category,
// appending it when absent. Matching is exact.
func (r Registry) WithCategory(category string) Registry {
	if category == "" || slices.Contains(r.Categories, category) {
		return r
	}
	r.Categories = append(append([]string(nil), r.Categories...), category)
	return r
}

// WithMember returns a registry that contains the family member,
// appending it when absent.
func (r Registry) WithMember(member string) Registry {
	if member == "" || slices.Contains(r.Members, member) {
		return r
	}
	r.Members = append(append([]string(nil), r.Members...), member)
	return r
}

// CanonicalCategory finds the known category matching name
// case-insensitively, so imports reuse the canonical casing.
func (r Registry) CanonicalCategory(name string) (string, bool) {
	for _, c := range r.Categories {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}

// FirstMember returns the first known family member, or "" when none.
func (r Registry) FirstMember() string {
	if len(r.Members) == 0 {
		return ""
	}
	return r.Members[0]
}
