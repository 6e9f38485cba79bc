package cmd

import (
	"context"
	"flag"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/tmasc/networth"
)

// exportOutput opens the -o target, or stdout when none is given.
func exportOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return os.Stdout, nil
	}
	return os.Create(path)
}

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export asset snapshots as CSV" }
func (*exportCmd) Usage() string {
	return `nwt export [-o <file>]

  Writes every asset item of every snapshot as CSV, one row per item,
  to the file or to stdout. The output reimports with 'nwt import'.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := DecodeStoreFile()
	if err != nil {
		return fail(err)
	}
	out, err := exportOutput(c.output)
	if err != nil {
		return fail(err)
	}

	err = networth.ExportAssetsCSV(out, store.Snapshots)
	if out != os.Stdout {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type exportIncomeCmd struct {
	output string
}

func (*exportIncomeCmd) Name() string     { return "exportincome" }
func (*exportIncomeCmd) Synopsis() string { return "export income records as CSV" }
func (*exportIncomeCmd) Usage() string {
	return `nwt exportincome [-o <file>]

  Writes every income record as CSV to the file or to stdout.
`
}

func (c *exportIncomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportIncomeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := DecodeStoreFile()
	if err != nil {
		return fail(err)
	}
	out, err := exportOutput(c.output)
	if err != nil {
		return fail(err)
	}

	err = networth.ExportIncomeCSV(out, store.Income)
	if out != os.Stdout {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}
