// Package cmd implements the CLI application to manage a family
// net-worth store.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/tmasc/networth"
)

// Register the subcommands.
// A main package calls Register(), then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&importCmd{}, "data")
	c.Register(&importIncomeCmd{}, "data")
	c.Register(&exportCmd{}, "data")
	c.Register(&exportIncomeCmd{}, "data")
	c.Register(&clearCmd{}, "data")

	c.Register(&seriesCmd{}, "reports")
	c.Register(&breakdownCmd{}, "reports")
	c.Register(&pivotCmd{}, "reports")
	c.Register(&stocksCmd{}, "reports")
	c.Register(&commentCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok
// to use global variables.

var storeFile = flag.String("store", "networth.jsonl", "Path to the net-worth store file (JSONL format)")
var ratesFile = flag.String("rates", "", "Path to a JSON rate override document (see 'nwt topic rates')")

// DecodeStoreFile loads the store from the app store file.
func DecodeStoreFile() (store *networth.Store, err error) {
	f, err := os.Open(*storeFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, store file does not exist, starting from an empty store")
		return &networth.Store{}, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return networth.DecodeStore(f)
}

// EncodeStoreFile rewrites the app store file in full.
func EncodeStoreFile(store *networth.Store) error {
	f, err := os.Create(*storeFile)
	if err != nil {
		return err
	}
	if err := networth.EncodeStore(f, store); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// AppRates returns the rate table for this invocation, applying the
// -rates override when one is given.
func AppRates() (networth.RateTable, error) {
	if *ratesFile == "" {
		return networth.DefaultRates(), nil
	}
	f, err := os.Open(*ratesFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return networth.LoadRates(f)
}

// openInput returns the first positional argument as a reader, or stdin
// when there is none.
func openInput(f *flag.FlagSet) (io.ReadCloser, error) {
	if f.NArg() == 0 {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(f.Arg(0))
}

// filterFlags declares the selection flags shared by the report commands.
type filterFlags struct {
	member   string
	category string
	start    string
	end      string
}

func (ff *filterFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&ff.member, "member", networth.All, "Family member to report on ('All' for everyone)")
	f.StringVar(&ff.category, "category", networth.All, "Category to drill into ('All' for every category)")
	f.StringVar(&ff.start, "start", "", "First month of the range (YYYY-MM)")
	f.StringVar(&ff.end, "end", "", "Last month of the range (YYYY-MM)")
}

func (ff *filterFlags) filter() networth.Filter {
	return networth.Filter{
		Member:     ff.member,
		Category:   ff.category,
		StartMonth: ff.start,
		EndMonth:   ff.end,
	}
}

// fail prints the error and maps it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
