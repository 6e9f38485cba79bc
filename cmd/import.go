package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/tmasc/networth"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "bulk import asset snapshot rows" }
func (*importCmd) Usage() string {
	return `nwt import [<file>]

  Reads spreadsheet rows (tab or comma separated) from the file, or from
  stdin when no file is given, and merges them into the store as
  snapshots. Existing snapshots on the same date and family member are
  replaced wholesale.

Usage Examples:
# Paste rows straight from a spreadsheet.
$ pbpaste | nwt import

`
}

func (*importCmd) SetFlags(_ *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := DecodeStoreFile()
	if err != nil {
		return fail(err)
	}
	in, err := openInput(f)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	store.Snapshots, store.Registry = networth.ImportAssets(in, store.Snapshots, store.Registry)
	if err := EncodeStoreFile(store); err != nil {
		return fail(err)
	}

	fmt.Printf("Imported. Store now holds %d snapshots.\n", len(store.Snapshots))
	return subcommands.ExitSuccess
}

type importIncomeCmd struct{}

func (*importIncomeCmd) Name() string     { return "importincome" }
func (*importIncomeCmd) Synopsis() string { return "bulk import income record rows" }
func (*importIncomeCmd) Usage() string {
	return `nwt importincome [<file>]

  Reads income rows (tab or comma separated) from the file, or from
  stdin when no file is given, and appends them to the store.
`
}

func (*importIncomeCmd) SetFlags(_ *flag.FlagSet) {}

func (c *importIncomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := DecodeStoreFile()
	if err != nil {
		return fail(err)
	}
	in, err := openInput(f)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	store.Income, store.Registry = networth.ImportIncome(in, store.Income, store.Registry)
	if err := EncodeStoreFile(store); err != nil {
		return fail(err)
	}

	fmt.Printf("Imported. Store now holds %d income records.\n", len(store.Income))
	return subcommands.ExitSuccess
}
