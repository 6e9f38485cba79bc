// Package networth implements the aggregation engine of a personal and
// family net-worth tracker.
//
// The engine is a set of pure transforms over in-memory collections of
// dated asset snapshots and investment-income records. From a filter
// selection it derives currency-normalized time series, asset/liability
// breakdowns, and date-by-subcategory pivot tables, and it folds bulk
// imported rows back into the snapshot collection.
//
// All collections are owned by the caller and updated by full replacement;
// every report is recomputed from its inputs on each call.
package networth
