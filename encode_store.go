package networth

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Store is the whole persisted state: every collection the engine works
// on. How the stream is stored (file, browser storage, database) is the
// caller's concern; the engine only encodes and decodes it.
type Store struct {
	Snapshots []Snapshot
	Income    []IncomeRecord
	Stocks    []StockPosition
	Registry  Registry
}

// record kinds in the JSONL stream.
const (
	recSnapshot = "snapshot"
	recIncome   = "income"
	recStock    = "stock"
	recRegistry = "registry"
)

// EncodeStore writes the store to 'w' as JSONL, one record per line,
// human readable and easy to diff or merge.
func EncodeStore(w io.Writer, store *Store) error {
	write := func(v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("cannot marshal store record: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write store record: %w", err)
		}
		return nil
	}

	type jtagged struct {
		Record string `json:"record"`
		Data   any    `json:"data"`
	}
	for _, s := range store.Snapshots {
		if err := write(jtagged{recSnapshot, s}); err != nil {
			return err
		}
	}
	for _, rec := range store.Income {
		if err := write(jtagged{recIncome, rec}); err != nil {
			return err
		}
	}
	for _, p := range store.Stocks {
		if err := write(jtagged{recStock, p}); err != nil {
			return err
		}
	}
	return write(jtagged{recRegistry, store.Registry})
}

// DecodeStore reads a JSONL store stream written by EncodeStore.
// Unknown record kinds are an error: the store is data, not user input,
// so it does not get the silent-default treatment of the bulk parser.
func DecodeStore(r io.Reader) (*Store, error) {
	store := &Store{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var identifier struct {
			Record string          `json:"record"`
			Data   json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(line), err)
		}

		switch identifier.Record {
		case recSnapshot:
			var s Snapshot
			if err := json.Unmarshal(identifier.Data, &s); err != nil {
				return nil, fmt.Errorf("invalid snapshot record: %w", err)
			}
			store.Snapshots = append(store.Snapshots, s)
		case recIncome:
			var rec IncomeRecord
			if err := json.Unmarshal(identifier.Data, &rec); err != nil {
				return nil, fmt.Errorf("invalid income record: %w", err)
			}
			store.Income = append(store.Income, rec)
		case recStock:
			var p StockPosition
			if err := json.Unmarshal(identifier.Data, &p); err != nil {
				return nil, fmt.Errorf("invalid stock record: %w", err)
			}
			store.Stocks = append(store.Stocks, p)
		case recRegistry:
			if err := json.Unmarshal(identifier.Data, &store.Registry); err != nil {
				return nil, fmt.Errorf("invalid registry record: %w", err)
			}
		default:
			return nil, fmt.Errorf("unknown record kind %q", identifier.Record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read store: %w", err)
	}
	return store, nil
}
