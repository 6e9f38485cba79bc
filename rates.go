package networth

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// ReferenceCurrency is the common unit every aggregated value is expressed in.
const ReferenceCurrency = "USD"

// RateTable converts currency-tagged amounts into the reference unit.
// Rates are the value of 1 unit of the currency in the reference currency.
type RateTable map[string]decimal.Decimal

// DefaultRates returns the built-in static rate table.
// Unknown codes are deliberately treated as already normalized (rate 1).
func DefaultRates() RateTable {
	return RateTable{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.NewFromFloat(1.08),
		"GBP": decimal.NewFromFloat(1.26),
		"JPY": decimal.NewFromFloat(0.0067),
		"CNY": decimal.NewFromFloat(0.14),
		"HKD": decimal.NewFromFloat(0.13),
		"TWD": decimal.NewFromFloat(0.031),
		"SGD": decimal.NewFromFloat(0.74),
		"AUD": decimal.NewFromFloat(0.66),
	}
}

// Rate returns the reference rate for a currency code, uppercased.
// An unknown code yields rate 1: the amount is silently assumed to be
// already in the reference unit. This lossy default is part of the
// engine's never-fail contract.
func (t RateTable) Rate(code string) decimal.Decimal {
	if r, ok := t[strings.ToUpper(code)]; ok {
		return r
	}
	return decimal.NewFromInt(1)
}

// Normalize converts a monetary amount into the reference currency.
func (t RateTable) Normalize(m Money) Money {
	return Money{value: m.value.Mul(t.Rate(m.cur)), cur: ReferenceCurrency}
}

// NormalizeValue converts a raw (amount, code) pair into a reference-unit amount.
func (t RateTable) NormalizeValue(amount float64, code string) float64 {
	return t.Normalize(M(amount, code)).AsFloat()
}

// LoadRates reads a JSON rate document and returns a table overriding the
// built-in defaults. The document holds the rates under the "rates" property:
//
//	{"rates": {"EUR": 1.08, "JPY": 0.0067}}
//
// Codes absent from the document keep their default rate.
func LoadRates(r io.Reader) (RateTable, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse rate document: %w", err)
	}
	path := "$.rates"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q in rate document: %w", path, err)
	}
	jrates, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%q in rate document is not an object", path)
	}

	table := DefaultRates()
	for code, v := range jrates {
		rate, ok := v.(float64)
		if !ok {
			return nil, fmt.Errorf("rate for %q is not a number: %v", code, v)
		}
		table[strings.ToUpper(code)] = decimal.NewFromFloat(rate)
	}
	return table, nil
}
